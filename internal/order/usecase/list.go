package usecase

import (
	"context"
	"fmt"

	"voltassist/internal/model"
	"voltassist/internal/order"
)

// ListMyOrders returns every order matching the session mobile, newest first.
func (uc *implUseCase) ListMyOrders(ctx context.Context, sc model.Scope) ([]model.Order, error) {
	if sc.Mobile == "" {
		return nil, order.ErrMobileRequired
	}

	orders, err := uc.repo.ListOrdersByMobile(ctx, sc.Mobile)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	uc.l.Infof(ctx, "ListMyOrders: mobile=%s count=%d", sc.Mobile, len(orders))
	return orders, nil
}
