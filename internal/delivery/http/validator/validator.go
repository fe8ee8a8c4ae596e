// Package validator adapts go-playground struct validation to Echo.
package validator

import (
	domainerrors "petlink/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the validator so Echo can call it on bound input.
type CustomValidator struct {
	validator *validator.Validate
}

// New creates the validator used by the HTTP server.
func New() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Violations surface as the shared
// validation error so the error handler renders the standard envelope.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validator.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
