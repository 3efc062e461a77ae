package catalog

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Required field names reported by ValidationError.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldImageRef    = "image_ref"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", validateNotBlank)
	// Report fields by their "field" tag so errors carry FieldName etc.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("field")
	})
	return v
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// ValidateCreateInput reports whether input can be used to create an item.
// It has no side effects, so presentation layers may call it to pre-validate
// a form. Fields are checked after trimming surrounding whitespace, in the
// order name, description, image_ref.
func ValidateCreateInput(input CreateItemInput) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &ValidationError{Field: fieldErrs[0].Field()}
	}
	return err
}
