package models

import (
	"errors"
	"fmt"
)

var (
	ErrNoSessionUser    = errors.New("auth error")
	ErrPermissionDenied = errors.New("user does not have permissions")
	ErrUserNotFound     = errors.New("user not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrOrderIDRequired  = errors.New("order id is required")
	ErrInvalidOrderID   = errors.New("invalid order id")
)

// MissingProductError is a data-integrity fault: a line item references
// a product that cannot be resolved from the catalog.
type MissingProductError struct {
	ProductID string
}

func (e *MissingProductError) Error() string {
	return fmt.Sprintf("line item references missing product %s", e.ProductID)
}
