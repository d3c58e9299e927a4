package service

import (
	"errors"
	"fmt"

	"go-inventory-api/pkg/validator"
)

var ErrProductNotFound = errors.New("product not found")

// InsufficientStockError is returned when a sale asks for more units than are
// on hand. It carries the remaining quantity for the response message.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock. Only %d units available.", e.Available)
}

// ValidationError wraps a schema constraint violation so handlers can map it
// to a 400 instead of a transaction failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// validateStruct runs the shared validator and converts the first failure
// into a ValidationError.
func validateStruct(data interface{}) error {
	if errs := validator.ValidateStruct(data); len(errs) > 0 {
		first := errs[0]
		return &ValidationError{
			Message: fmt.Sprintf("Validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag),
		}
	}
	return nil
}
