package http

import (
	"time"

	"voltassist/internal/model"
)

type addressResp struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

type orderResp struct {
	ID                    string       `json:"id"`
	OrderNumber           string       `json:"order_number"`
	CustomerName          string       `json:"customer_name"`
	ScooterModel          string       `json:"scooter_model"`
	ScooterColor          string       `json:"scooter_color,omitempty"`
	OrderAmount           float64      `json:"order_amount"`
	PaymentStatus         string       `json:"payment_status"`
	OrderStatus           string       `json:"order_status"`
	DeliveryAddress       *addressResp `json:"delivery_address,omitempty"`
	EstimatedDeliveryDate *time.Time   `json:"estimated_delivery_date,omitempty"`
	ActualDeliveryDate    *time.Time   `json:"actual_delivery_date,omitempty"`
	TrackingNumber        string       `json:"tracking_number,omitempty"`
	CourierPartner        string       `json:"courier_partner,omitempty"`
	CreatedAt             time.Time    `json:"created_at"`
}

func newOrderResp(o model.Order) orderResp {
	resp := orderResp{
		ID:                    o.ID,
		OrderNumber:           o.OrderNumber,
		CustomerName:          o.CustomerName,
		ScooterModel:          o.ScooterModel,
		ScooterColor:          o.ScooterColor,
		OrderAmount:           o.OrderAmount,
		PaymentStatus:         o.PaymentStatus,
		OrderStatus:           string(o.OrderStatus),
		EstimatedDeliveryDate: o.EstimatedDeliveryDate,
		ActualDeliveryDate:    o.ActualDeliveryDate,
		TrackingNumber:        o.TrackingNumber,
		CourierPartner:        o.CourierPartner,
		CreatedAt:             o.CreatedAt,
	}
	if o.DeliveryAddress != nil {
		resp.DeliveryAddress = &addressResp{
			Street:  o.DeliveryAddress.Street,
			City:    o.DeliveryAddress.City,
			State:   o.DeliveryAddress.State,
			Pincode: o.DeliveryAddress.Pincode,
		}
	}
	return resp
}

type listOrdersResp struct {
	Orders []orderResp `json:"orders"`
}

func (h *handler) newListOrdersResp(orders []model.Order) listOrdersResp {
	out := make([]orderResp, len(orders))
	for i, o := range orders {
		out[i] = newOrderResp(o)
	}
	return listOrdersResp{Orders: out}
}
