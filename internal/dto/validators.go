package dto

import (
	"github.com/SscSPs/zcred_app/internal/utils/currency"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags used by the request DTOs.
//
//	zcred: amount text with at most two decimals, non-negative
func RegisterValidators(v *validator.Validate) error {
	return v.RegisterValidation("zcred", func(fl validator.FieldLevel) bool {
		return currency.ValidateZcredInput(fl.Field().String())
	})
}
