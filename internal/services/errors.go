package services

import (
	"errors"
	"fmt"
)

// ErrInsufficientStock is returned when a cart addition asks for more units
// than a limited-stock product holds.
var ErrInsufficientStock = errors.New("insufficient stock")

// ValidationError reports a stored record that does not match the Product
// shape. It points at corrupt data, not at a bad request.
type ValidationError struct {
	ProductID string
	Err       error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("product %q failed validation: %v", e.ProductID, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
