package discord

import "errors"

var (
	ErrEmptyTimestamp = errors.New("timestamp is empty")
)
