// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *validator.Validate
}

// New creates an Echo validator backed by go-playground/validator.
func New() echo.Validator {
	return &echoValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate runs struct tag validation. Handlers surface the failure as a
// 400 themselves, so the raw validation error is returned unwrapped.
func (v *echoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
