// Package validator adapts go-playground validation to echo's Validator
// interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"

	domainerrors "brewhub/internal/domain/errors"
)

// CustomValidator wraps a shared validator instance.
type CustomValidator struct {
	validate *playground.Validate
}

// New creates a validator for request structs.
func New() *CustomValidator {
	return &CustomValidator{validate: playground.New()}
}

// Validate checks struct tags and surfaces failures as the catalog
// validation error so the error handler renders them uniformly.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
