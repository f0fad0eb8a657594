package dump

import "errors"

var (
	ErrReadConfigurationFailure = errors.New("failed to read configuration")
	ErrLoadConfigurationFailure = errors.New("failed to load configuration")
	ErrInvalidConfiguration     = errors.New("invalid configuration")
	ErrNoInputs                 = errors.New("no inputs given")

	ErrEmptyCapture   = errors.New("capture is empty")
	ErrInvalidCapture = errors.New("capture is not valid json")
	ErrDecodeFailures = errors.New("one or more captures failed to decode")
)
