// Package validation wraps go-playground/validator for configuration structs.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// ErrInvalid is wrapped by every error ValidateStruct returns
	ErrInvalid = errors.New("validation failed")
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their YAML key so messages match the config file
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
}

// ValidateStruct validates v using its struct tags and reports every failing
// field, not just the first
func ValidateStruct(v any) error {
	if v == nil {
		return fmt.Errorf("%w: nil value", ErrInvalid)
	}

	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, formatValidationError(err))
	}
	return nil
}

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	messages := make([]error, 0, len(validationErrs))
	for _, e := range validationErrs {
		field := strings.TrimPrefix(e.Namespace(), rootNamespace(e))
		param := e.Param()

		switch e.Tag() {
		case "required":
			messages = append(messages, fmt.Errorf("%s: field is required", field))
		case "min":
			messages = append(messages, fmt.Errorf("%s: must be at least %s", field, param))
		case "max":
			messages = append(messages, fmt.Errorf("%s: must not exceed %s", field, param))
		case "gt":
			messages = append(messages, fmt.Errorf("%s: must be greater than %s", field, param))
		case "oneof":
			messages = append(messages, fmt.Errorf("%s: must be one of [%s], got %v", field, param, e.Value()))
		default:
			messages = append(messages, fmt.Errorf("%s: validation failed (%s)", field, e.Tag()))
		}
	}

	return errors.Join(messages...)
}

// rootNamespace returns the "Struct." prefix validator puts on namespaces
func rootNamespace(e validator.FieldError) string {
	ns := e.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[:idx+1]
	}
	return ""
}
