package handlers

import (
	"github.com/astrofinance/afs_backend/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators installs the binding-tag validators used by the
// request DTOs. Must run once at startup before routes are served.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("txntype", validTransactionType)
	}
}

// validTransactionType accepts any casing of the supported transaction types.
func validTransactionType(fl validator.FieldLevel) bool {
	_, err := domain.ParseTransactionType(fl.Field().String())
	return err == nil
}
