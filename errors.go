package ready

import (
	"errors"

	"github.com/WelcomerTeam/Sandwich-Ready/schema"
)

var (
	ErrMissingField      = schema.ErrMissingField
	ErrTypeMismatch      = schema.ErrTypeMismatch
	ErrNoMatchingVariant = schema.ErrNoMatchingVariant
	ErrEncoding          = schema.ErrEncoding

	ErrUnknownSchema = errors.New("unknown schema version")
	ErrNotReadyEvent = errors.New("payload is not a ready dispatch")
	ErrEmptyPayload  = errors.New("payload holds no ready event")
)

type (
	MissingFieldError      = schema.MissingFieldError
	TypeMismatchError      = schema.TypeMismatchError
	NoMatchingVariantError = schema.NoMatchingVariantError
	EncodingError          = schema.EncodingError
)
