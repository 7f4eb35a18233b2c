// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "authd/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// echoValidator wraps a validator instance for request struct validation.
type echoValidator struct {
	validate *validator.Validate
}

// New creates an Echo-compatible validator.
func New() *echoValidator {
	return &echoValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Tag violations map to the validation
// error of the domain taxonomy so the error middleware renders a 400.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
