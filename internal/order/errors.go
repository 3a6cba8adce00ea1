package order

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("order not found")

	// ErrDuplicateNumber is returned when the generated order number collides
	// with an existing row; creation retries with a fresh number.
	ErrDuplicateNumber = errors.New("duplicate order number")
)

// ProductNotFoundError aborts creation when a requested line references a
// product id that does not exist.
type ProductNotFoundError struct {
	ProductID int64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %d not found", e.ProductID)
}

// ProductUnavailableError aborts creation when the referenced product is
// inactive.
type ProductUnavailableError struct {
	ProductName string
}

func (e *ProductUnavailableError) Error() string {
	return fmt.Sprintf("product %q is not available", e.ProductName)
}

// InsufficientStockError aborts creation when the requested quantity exceeds
// the available stock, reporting what is actually available.
type InsufficientStockError struct {
	ProductName string
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: %d available", e.ProductName, e.Available)
}

// InvalidTransitionError rejects a status change not allowed by the workflow.
type InvalidTransitionError struct {
	From, To Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition order from %s to %s", e.From, e.To)
}
