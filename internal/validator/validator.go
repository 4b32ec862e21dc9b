// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_type", validateTransactionType)
	}
}

// validateTransactionType accepts the money-movement direction labels.
// Unknown categories are deliberately NOT rejected here: the label set is
// extensible and an unseeded category surfaces later as a projection gap,
// not a validation failure.
func validateTransactionType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "in", "out":
		return true
	}
	return false
}
