package order

import (
	"context"

	"voltassist/internal/model"
)

// UseCase defines the business logic interface for the order domain.
type UseCase interface {
	// ListMyOrders returns the authenticated customer's orders, newest first.
	ListMyOrders(ctx context.Context, sc model.Scope) ([]model.Order, error)
}
