package usecase_test

import (
	"context"
	"errors"
	"testing"

	"voltassist/internal/model"
	"voltassist/internal/order"
	"voltassist/internal/order/usecase"
	"voltassist/pkg/log"
)

type mockOrderRepo struct {
	listFunc func(mobile string) ([]model.Order, error)
}

func (m *mockOrderRepo) GetOrderByNumber(ctx context.Context, orderNumber string) (model.Order, error) {
	return model.Order{}, nil
}

func (m *mockOrderRepo) ListOrdersByMobile(ctx context.Context, mobile string) ([]model.Order, error) {
	if m.listFunc != nil {
		return m.listFunc(mobile)
	}
	return nil, nil
}

func TestListMyOrders(t *testing.T) {
	t.Run("requires mobile", func(t *testing.T) {
		uc := usecase.New(log.NewNop(), &mockOrderRepo{})
		if _, err := uc.ListMyOrders(context.Background(), model.Scope{}); err != order.ErrMobileRequired {
			t.Errorf("expected ErrMobileRequired, got %v", err)
		}
	})

	t.Run("returns repository orders", func(t *testing.T) {
		uc := usecase.New(log.NewNop(), &mockOrderRepo{
			listFunc: func(mobile string) ([]model.Order, error) {
				if mobile != "9876543210" {
					t.Errorf("unexpected mobile: %s", mobile)
				}
				return []model.Order{{OrderNumber: "ES240123"}}, nil
			},
		})

		orders, err := uc.ListMyOrders(context.Background(), model.Scope{Mobile: "9876543210"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(orders) != 1 || orders[0].OrderNumber != "ES240123" {
			t.Errorf("unexpected orders: %+v", orders)
		}
	})

	t.Run("wraps repository failure", func(t *testing.T) {
		repoErr := errors.New("db down")
		uc := usecase.New(log.NewNop(), &mockOrderRepo{
			listFunc: func(string) ([]model.Order, error) { return nil, repoErr },
		})

		if _, err := uc.ListMyOrders(context.Background(), model.Scope{Mobile: "9876543210"}); !errors.Is(err, repoErr) {
			t.Errorf("expected wrapped repo error, got %v", err)
		}
	})
}
