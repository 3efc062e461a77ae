package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrItemNotFound     = errors.New("item not found")
	ErrInvalidViewParam = errors.New("invalid view parameter")
)

// ValidationError reports the first required field that was empty.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s is required", ErrValidation.Error(), e.Field)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ViewParamError reports an unknown filter or sort token.
// It matches ErrInvalidViewParam with errors.Is.
type ViewParamError struct {
	Param string
	Value string
}

func (e *ViewParamError) Error() string {
	return fmt.Sprintf("%s: %s=%q", ErrInvalidViewParam.Error(), e.Param, e.Value)
}

func (e *ViewParamError) Unwrap() error {
	return ErrInvalidViewParam
}
