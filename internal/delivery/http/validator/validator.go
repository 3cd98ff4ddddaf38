// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"currex/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validator.Validate
}

// New builds the request validator used by the echo server.
func New() echo.Validator {
	return &echoValidator{validate: validator.New()}
}

// Validate runs struct-tag validation and maps failures to the shared
// validation domain error so the error middleware renders them uniformly.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
