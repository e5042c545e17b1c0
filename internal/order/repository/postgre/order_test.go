package postgre

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"voltassist/internal/order/repository"
	"voltassist/pkg/log"
)

var orderCols = []string{
	"id", "order_number", "customer_mobile", "customer_name", "customer_email",
	"scooter_model", "scooter_color", "order_amount", "payment_status", "order_status",
	"delivery_address", "estimated_delivery_date", "actual_delivery_date",
	"tracking_number", "courier_partner", "special_instructions", "created_at", "updated_at",
}

func orderRow(mock sqlmock.Sqlmock, number string) *sqlmock.Rows {
	now := time.Now()
	return mock.NewRows(orderCols).AddRow(
		"ord-1", number, "+919876543210", "Priya", nil,
		"Volt X2", "Red", 125000.0, "paid", "in_transit",
		[]byte(`{"street":"12 MG Road","city":"Bengaluru","state":"Karnataka","pincode":"560001"}`),
		now, nil,
		"TRK1", "BlueDart", nil, now, now,
	)
}

func TestGetOrderByNumber(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	r := New(db, log.NewNop())

	t.Run("found uppercases the number", func(t *testing.T) {
		mock.ExpectQuery("(?s)SELECT .+ FROM orders WHERE order_number").
			WithArgs("ES240123").
			WillReturnRows(orderRow(mock, "ES240123"))

		o, err := r.GetOrderByNumber(context.Background(), "es240123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.OrderNumber != "ES240123" {
			t.Errorf("unexpected order: %+v", o)
		}
		if o.DeliveryAddress == nil || o.DeliveryAddress.City != "Bengaluru" {
			t.Errorf("delivery address not decoded: %+v", o.DeliveryAddress)
		}
		if o.EstimatedDeliveryDate == nil {
			t.Errorf("estimated delivery date not decoded")
		}
		if o.ActualDeliveryDate != nil {
			t.Errorf("nil actual delivery date expected")
		}
	})

	t.Run("not found is not an error", func(t *testing.T) {
		mock.ExpectQuery("(?s)SELECT .+ FROM orders WHERE order_number").
			WithArgs("ES240999").
			WillReturnRows(mock.NewRows(orderCols))

		o, err := r.GetOrderByNumber(context.Background(), "ES240999")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.ID != "" {
			t.Errorf("expected zero-value order, got %+v", o)
		}
	})

	t.Run("query failure maps to sentinel", func(t *testing.T) {
		mock.ExpectQuery("(?s)SELECT .+ FROM orders WHERE order_number").
			WillReturnError(context.DeadlineExceeded)

		if _, err := r.GetOrderByNumber(context.Background(), "ES240123"); err != repository.ErrFailedToGet {
			t.Errorf("expected ErrFailedToGet, got %v", err)
		}
	})
}

func TestListOrdersByMobile(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	r := New(db, log.NewNop())

	t.Run("expands mobile into fuzzy patterns", func(t *testing.T) {
		rows := orderRow(mock, "ES240123")
		mock.ExpectQuery("(?s)SELECT .+ FROM orders").
			WithArgs("%9876543210%", "%+919876543210%", "%919876543210%", "%9876543210%").
			WillReturnRows(rows)

		orders, err := r.ListOrdersByMobile(context.Background(), "98765 43210")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(orders) != 1 || orders[0].OrderNumber != "ES240123" {
			t.Errorf("unexpected orders: %+v", orders)
		}
	})

	t.Run("no rows returns empty slice", func(t *testing.T) {
		mock.ExpectQuery("(?s)SELECT .+ FROM orders").
			WillReturnRows(mock.NewRows(orderCols))

		orders, err := r.ListOrdersByMobile(context.Background(), "0000000000")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(orders) != 0 {
			t.Errorf("expected no orders, got %+v", orders)
		}
	})
}
