package order

import (
	"strings"
	"testing"
	"time"

	"voltassist/internal/model"
)

func sampleOrder() model.Order {
	est := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)
	return model.Order{
		ID:             "ord-1",
		OrderNumber:    "ES240123",
		CustomerMobile: "9876543210",
		CustomerName:   "Priya",
		ScooterModel:   "Volt X2",
		ScooterColor:   "Midnight Blue",
		OrderAmount:    125000,
		PaymentStatus:  "paid",
		OrderStatus:    model.OrderStatusInTransit,
		DeliveryAddress: &model.Address{
			Street:  "12 MG Road",
			City:    "Bengaluru",
			State:   "Karnataka",
			Pincode: "560001",
		},
		EstimatedDeliveryDate: &est,
		TrackingNumber:        "TRK998877",
		CourierPartner:        "BlueDart",
	}
}

func TestFormatStatusContainsCoreFields(t *testing.T) {
	msg := FormatStatus(sampleOrder())

	for _, want := range []string{
		"ES240123",
		"Volt X2",
		"Midnight Blue",
		"₹1,25,000",
		"Payment: Paid",
		"Monday, 15 July 2024",
		"Tracking Number: TRK998877",
		"Courier Partner: BlueDart",
		"12 MG Road",
		"Bengaluru, Karnataka",
		"560001",
		"Track your shipment",
		SupportLine,
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("status message missing %q\n%s", want, msg)
		}
	}
}

func TestFormatStatusTrackingLineRequiresBothFields(t *testing.T) {
	o := sampleOrder()
	o.CourierPartner = ""
	msg := FormatStatus(o)

	if strings.Contains(msg, "**Shipping Details:**") {
		t.Errorf("shipping block should require both tracking number and courier")
	}
	// Core fields are always present.
	if !strings.Contains(msg, o.OrderNumber) || !strings.Contains(msg, "₹1,25,000") {
		t.Errorf("status message missing order number or amount")
	}
}

func TestFormatStatusOptionalSections(t *testing.T) {
	o := sampleOrder()
	o.ScooterColor = ""
	o.EstimatedDeliveryDate = nil
	o.DeliveryAddress = nil
	o.OrderStatus = model.OrderStatusConfirmed

	msg := FormatStatus(o)
	if strings.Contains(msg, "• Color:") {
		t.Errorf("color line should be omitted when color is empty")
	}
	if strings.Contains(msg, "Expected Delivery") {
		t.Errorf("delivery date line should be omitted when date is absent")
	}
	if strings.Contains(msg, "**Delivery Address:**") {
		t.Errorf("address block should be omitted when address is absent")
	}
}

func TestFormatStatusUnknownStatus(t *testing.T) {
	o := sampleOrder()
	o.OrderStatus = model.OrderStatus("weird_state")

	msg := FormatStatus(o)
	if !strings.Contains(msg, "**Status**: weird_state") {
		t.Errorf("unknown status should fall back to a generic label\n%s", msg)
	}
}

func TestFormatStatusTips(t *testing.T) {
	o := sampleOrder()

	o.OrderStatus = model.OrderStatusOutForDelivery
	if !strings.Contains(FormatStatus(o), "**Be ready**") {
		t.Errorf("missing out-for-delivery tip")
	}

	o.OrderStatus = model.OrderStatusDelivered
	if !strings.Contains(FormatStatus(o), "**Next steps**") {
		t.Errorf("missing delivered tip")
	}

	o.OrderStatus = model.OrderStatusProcessing
	if strings.Contains(FormatStatus(o), "💡") {
		t.Errorf("processing status should have no tip")
	}
}

func TestFormatOrderList(t *testing.T) {
	t.Run("zero orders", func(t *testing.T) {
		msg := FormatOrderList(nil)
		if !strings.Contains(msg, "No orders found") {
			t.Errorf("unexpected zero-orders message: %s", msg)
		}
	})

	t.Run("single order uses full narrative", func(t *testing.T) {
		msg := FormatOrderList([]model.Order{sampleOrder()})
		if !strings.Contains(msg, "**Order Details:**") {
			t.Errorf("single order should use the full status narrative")
		}
	})

	t.Run("multiple orders are numbered", func(t *testing.T) {
		second := sampleOrder()
		second.OrderNumber = "ES240456"
		second.OrderStatus = model.OrderStatusDelivered
		second.OrderAmount = 98500

		msg := FormatOrderList([]model.Order{sampleOrder(), second})

		for _, want := range []string{
			"**1. Order ES240123**",
			"**2. Order ES240456**",
			"Status: In_transit",
			"Status: Delivered",
			"₹1,25,000",
			"₹98,500",
			"Expected Delivery: 15/7/2024",
		} {
			if !strings.Contains(msg, want) {
				t.Errorf("list message missing %q\n%s", want, msg)
			}
		}
	})
}

func TestFormatINR(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "0"},
		{500, "500"},
		{85000, "85,000"},
		{125000, "1,25,000"},
		{1234567, "12,34,567"},
		{99999999, "9,99,99,999"},
		{1499.5, "1,499.50"},
	}

	for _, tt := range tests {
		if got := FormatINR(tt.amount); got != tt.want {
			t.Errorf("FormatINR(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
