package repository

import (
	"context"

	"voltassist/internal/model"
)

// OrderRepository defines read access to the order store. Orders are owned by
// an external system; this service never writes them.
type OrderRepository interface {
	// GetOrderByNumber returns the order with the given number, or a zero-value
	// Order (ID == "") when none exists — not-found is not an error.
	GetOrderByNumber(ctx context.Context, orderNumber string) (model.Order, error)

	// ListOrdersByMobile returns every order whose customer mobile matches any
	// normalized form of the given number, newest first.
	ListOrdersByMobile(ctx context.Context, mobile string) ([]model.Order, error)
}
