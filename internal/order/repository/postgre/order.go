package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"voltassist/internal/model"
	repo "voltassist/internal/order/repository"
)

const orderColumns = `id, order_number, customer_mobile, customer_name, customer_email,
	scooter_model, scooter_color, order_amount, payment_status, order_status,
	delivery_address, estimated_delivery_date, actual_delivery_date,
	tracking_number, courier_partner, special_instructions, created_at, updated_at`

// GetOrderByNumber fetches a single order by its normalized (upper-cased)
// order number. Returns zero-value Order when not found — no error.
func (r *implRepository) GetOrderByNumber(ctx context.Context, orderNumber string) (model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_number = $1 LIMIT 1`

	row := r.db.QueryRowContext(ctx, query, strings.ToUpper(orderNumber))
	o, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return model.Order{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOrderByNumber"), err)
		return model.Order{}, repo.ErrFailedToGet
	}
	return o, nil
}

// ListOrdersByMobile fuzzy-matches the customer mobile against every
// normalized form of the given number, newest orders first.
func (r *implRepository) ListOrdersByMobile(ctx context.Context, mobile string) ([]model.Order, error) {
	patterns := repo.MobileSearchPatterns(mobile)

	query := `SELECT ` + orderColumns + ` FROM orders
		WHERE customer_mobile LIKE $1 OR customer_mobile LIKE $2
		   OR customer_mobile LIKE $3 OR customer_mobile LIKE $4
		ORDER BY created_at DESC`

	args := make([]any, len(patterns))
	for i, p := range patterns {
		args[i] = "%" + p + "%"
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListOrdersByMobile"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListOrdersByMobile"), err)
			return nil, repo.ErrFailedToList
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListOrdersByMobile"), err)
		return nil, repo.ErrFailedToList
	}
	return orders, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (model.Order, error) {
	var (
		o            model.Order
		email        sql.NullString
		color        sql.NullString
		addressJSON  []byte
		estimated    sql.NullTime
		actual       sql.NullTime
		tracking     sql.NullString
		courier      sql.NullString
		instructions sql.NullString
	)

	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.CustomerMobile, &o.CustomerName, &email,
		&o.ScooterModel, &color, &o.OrderAmount, &o.PaymentStatus, &o.OrderStatus,
		&addressJSON, &estimated, &actual,
		&tracking, &courier, &instructions, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return model.Order{}, err
	}

	o.CustomerEmail = email.String
	o.ScooterColor = color.String
	o.TrackingNumber = tracking.String
	o.CourierPartner = courier.String
	o.SpecialInstructions = instructions.String

	if estimated.Valid {
		t := estimated.Time
		o.EstimatedDeliveryDate = &t
	}
	if actual.Valid {
		t := actual.Time
		o.ActualDeliveryDate = &t
	}

	if len(addressJSON) > 0 {
		var addr model.Address
		if err := json.Unmarshal(addressJSON, &addr); err == nil {
			o.DeliveryAddress = &addr
		}
	}

	return o, nil
}
