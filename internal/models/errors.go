package models

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidField = errors.New("invalid field")
	ErrInvalidTable = errors.New("invalid table number")
	ErrEmptyOrder   = errors.New("order must contain at least one product")
)

// FieldError reports which product field failed validation and why
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is lets errors.Is(err, ErrInvalidField) match any FieldError
func (e *FieldError) Is(target error) bool {
	return target == ErrInvalidField
}

func fieldError(field, format string, args ...interface{}) error {
	return &FieldError{
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}
