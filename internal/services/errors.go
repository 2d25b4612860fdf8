package services

import (
	"errors"

	"github.com/schooldesk/ordering/internal/validation"
)

var (
	ErrEmailTaken         = errors.New("email_taken")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrUnknownProduct     = errors.New("unknown_product")
	ErrInvalidQuantity    = errors.New("invalid_quantity")
	ErrEmptyCart          = errors.New("empty_cart")
	ErrNotFound           = errors.New("not_found")
	ErrDispatch           = errors.New("dispatch_failed")
)

// ValidationError carries the per-field violations of a rejected signup.
type ValidationError struct {
	Violations validation.Violations
}

func (e *ValidationError) Error() string { return "validation_failed" }
