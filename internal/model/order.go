package model

import "time"

// OrderStatus is the lifecycle state of a scooter order.
type OrderStatus string

const (
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusProcessing     OrderStatus = "processing"
	OrderStatusManufacturing  OrderStatus = "manufacturing"
	OrderStatusQualityCheck   OrderStatus = "quality_check"
	OrderStatusDispatched     OrderStatus = "dispatched"
	OrderStatusInTransit      OrderStatus = "in_transit"
	OrderStatusOutForDelivery OrderStatus = "out_for_delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
	OrderStatusCancelled      OrderStatus = "cancelled"
)

// Address is the structured delivery address attached to an order.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// Order is a scooter purchase record. Owned by the order store; this service
// only reads and formats it.
type Order struct {
	ID                    string
	OrderNumber           string
	CustomerMobile        string
	CustomerName          string
	CustomerEmail         string
	ScooterModel          string
	ScooterColor          string
	OrderAmount           float64
	PaymentStatus         string
	OrderStatus           OrderStatus
	DeliveryAddress       *Address
	EstimatedDeliveryDate *time.Time
	ActualDeliveryDate    *time.Time
	TrackingNumber        string
	CourierPartner        string
	SpecialInstructions   string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
