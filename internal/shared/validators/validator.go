package validators

import (
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

const tagLogLevel = "loglevel"

// New creates a new validator instance with the project specific tags registered.
//
//   - loglevel: the string is a level zerolog can parse (trace, debug, info, warn, ...)
func New() *Validate {
	validate := validator.New()
	_ = validate.RegisterValidation(tagLogLevel, func(fl validator.FieldLevel) bool {
		_, err := zerolog.ParseLevel(fl.Field().String())
		return err == nil
	})
	return validate
}
