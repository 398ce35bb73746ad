package reservation

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrUnknownProduct  = errors.New("one or more products do not exist")
	ErrUnknownStatus   = errors.New("invalid status")
	ErrNotFound        = errors.New("reservation not found")
	ErrNotAllowed      = errors.New("not authorized")
	ErrNotPending      = errors.New("only pending reservations can be cancelled")

	// ErrDuplicateInvoiceCode is returned by the store when the generated
	// invoice code collides with an existing one. The engine retries a
	// bounded number of times before letting it escape.
	ErrDuplicateInvoiceCode = errors.New("invoice code already exists")
)

type InsufficientStockError struct {
	Product   string
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: %d available", e.Product, e.Available)
}
