package schema

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField      = errors.New("missing field")
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrNoMatchingVariant = errors.New("no matching variant")
	ErrEncoding          = errors.New("encoding error")

	ErrInvalidTarget = errors.New("decode target must be a non-nil pointer")
)

// MissingFieldError is returned when a required key is absent from an object.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q", e.Field)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// TypeMismatchError is returned when a value is present but its shape does
// not match the declared type.
type TypeMismatchError struct {
	Err      error
	Field    string
	Expected string
	Found    string
}

func (e *TypeMismatchError) Error() string {
	msg := fmt.Sprintf("expected %s, found %s", e.Expected, e.Found)
	if e.Field != "" {
		msg = fmt.Sprintf("field %q: %s", e.Field, msg)
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

func (e *TypeMismatchError) Unwrap() error {
	return e.Err
}

// NoMatchingVariantError is returned when every variant of an untagged union
// rejected the value.
type NoMatchingVariantError struct {
	Field string
	Union string
	Found string
}

func (e *NoMatchingVariantError) Error() string {
	msg := fmt.Sprintf("no variant of %s matched %s", e.Union, e.Found)
	if e.Field != "" {
		msg = fmt.Sprintf("field %q: %s", e.Field, msg)
	}

	return msg
}

func (e *NoMatchingVariantError) Is(target error) bool {
	return target == ErrNoMatchingVariant
}

// EncodingError is returned when a value cannot be represented in its wire shape.
type EncodingError struct {
	Err   error
	Field string
}

func (e *EncodingError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("field %q: failed to encode: %v", e.Field, e.Err)
	}

	return fmt.Sprintf("failed to encode: %v", e.Err)
}

func (e *EncodingError) Is(target error) bool {
	return target == ErrEncoding
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// Mismatch builds a TypeMismatchError for node. The field path is filled in
// by the engine as the error travels up.
func Mismatch(expected string, node any) error {
	return &TypeMismatchError{Expected: expected, Found: KindOf(node)}
}

// NoVariant builds a NoMatchingVariantError for the named union.
func NoVariant(union string, node any) error {
	return &NoMatchingVariantError{Union: union, Found: KindOf(node)}
}

// Prefix re-roots err under path. Errors outside the taxonomy are returned
// unchanged.
func Prefix(err error, path string) error {
	if path == "" || err == nil {
		return err
	}

	switch e := err.(type) {
	case *MissingFieldError:
		return &MissingFieldError{Field: joinPath(path, e.Field)}
	case *TypeMismatchError:
		c := *e
		c.Field = joinPath(path, c.Field)

		return &c
	case *NoMatchingVariantError:
		c := *e
		c.Field = joinPath(path, c.Field)

		return &c
	case *EncodingError:
		c := *e
		c.Field = joinPath(path, c.Field)

		return &c
	}

	return err
}

func joinPath(prefix, field string) string {
	switch {
	case field == "":
		return prefix
	case prefix == "":
		return field
	case field[0] == '[':
		return prefix + field
	default:
		return prefix + "." + field
	}
}
