package form

import "errors"

// Validation errors wrapped by FieldError.
var (
	ErrRequired     = errors.New("value is required")
	ErrInvalidEmail = errors.New("invalid email address")
	ErrUnknownField = errors.New("unknown field")
)
