package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/savioruz/pexiblock-checkout/pkg/helper"
)

const TagAmount = "amount"

// New returns a validator with the checkout-specific tags registered.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation(TagAmount, func(fl validator.FieldLevel) bool {
		return helper.IsValidAmount(fl.Field().String())
	})

	return v
}

// MissingRequired reports whether any validation error was caused by a
// required field being empty.
func MissingRequired(err error) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}

	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return true
		}
	}

	return false
}

// Describe flattens validation errors into one readable line.
func Describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fe.Field()+" failed on '"+fe.Tag()+"'")
	}

	return "validation error: " + strings.Join(parts, ", ")
}
