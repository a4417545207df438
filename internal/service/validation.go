package service

import (
	"errors"
	"fmt"

	perrors "github.com/abgdnv/bakery-inventory/internal/errors"
	"github.com/abgdnv/bakery-inventory/internal/store"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// NewValidator returns a validator that knows the "notblank" and "category" tags used by the payloads.
func NewValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails on an empty tag or a nil func.
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return store.Category(fl.Field().String()).Valid()
	})
	return v
}

// validatePayload runs struct validation and reports the first failure as an InvalidOperation error.
func (s *Service) validatePayload(payload any) error {
	err := s.validate.Struct(payload)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return perrors.InvalidOperation("%s", validationMessage(validationErrors[0]))
	}
	return perrors.InvalidOperation("Invalid payload: %v", err)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.StructField() {
	case "Name":
		if fe.Tag() == "max" {
			return fmt.Sprintf("Product name must be at most %s characters.", fe.Param())
		}
		return "Product name cannot be empty."
	case "Quantity":
		return "Product quantity must be greater than zero."
	case "Category":
		if fe.Tag() == "required" {
			return "Product category cannot be empty."
		}
		return fmt.Sprintf("Unknown category %q", fe.Value())
	case "Amount":
		return "Stock amount must be greater than zero."
	default:
		return fmt.Sprintf("%s failed on rule: %s", fe.Field(), fe.Tag())
	}
}
