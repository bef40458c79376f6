package lib

import (
	"github.com/go-playground/validator/v10"
)

// NewValidator returns validator with additional validid tag
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("validid", func(fl validator.FieldLevel) bool {
		return IsValidID(fl.Field().String())
	})

	return v
}
