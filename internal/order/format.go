package order

import (
	"fmt"
	"strings"

	"voltassist/internal/model"
)

// SupportLine is appended to every order status narrative.
const SupportLine = "*Need help? Call us at 1800-123-4567*"

const (
	longDateFormat  = "Monday, 2 January 2006"
	shortDateFormat = "2/1/2006"
)

// FormatStatus renders one order into the user-facing status narrative:
// a status headline, the order details block, conditional shipping/address
// sections, a status-specific tip, and the support line.
func FormatStatus(o model.Order) string {
	var b strings.Builder

	b.WriteString(statusHeadline(o))

	b.WriteString("\n\n**Order Details:**")
	b.WriteString(fmt.Sprintf("\n• Order Number: %s", o.OrderNumber))
	b.WriteString(fmt.Sprintf("\n• Model: %s", o.ScooterModel))
	if o.ScooterColor != "" {
		b.WriteString(fmt.Sprintf("\n• Color: %s", o.ScooterColor))
	}
	b.WriteString(fmt.Sprintf("\n• Amount: ₹%s", FormatINR(o.OrderAmount)))
	b.WriteString(fmt.Sprintf("\n• Payment: %s", capitalize(o.PaymentStatus)))

	if o.EstimatedDeliveryDate != nil {
		b.WriteString(fmt.Sprintf("\n• Expected Delivery: %s", o.EstimatedDeliveryDate.Format(longDateFormat)))
	}

	if o.TrackingNumber != "" && o.CourierPartner != "" {
		b.WriteString("\n\n**Shipping Details:**")
		b.WriteString(fmt.Sprintf("\n• Tracking Number: %s", o.TrackingNumber))
		b.WriteString(fmt.Sprintf("\n• Courier Partner: %s", o.CourierPartner))
	}

	if o.DeliveryAddress != nil {
		b.WriteString("\n\n**Delivery Address:**")
		b.WriteString(fmt.Sprintf("\n%s", o.DeliveryAddress.Street))
		b.WriteString(fmt.Sprintf("\n%s, %s", o.DeliveryAddress.City, o.DeliveryAddress.State))
		b.WriteString(fmt.Sprintf("\n%s", o.DeliveryAddress.Pincode))
	}

	switch o.OrderStatus {
	case model.OrderStatusDispatched, model.OrderStatusInTransit:
		b.WriteString(fmt.Sprintf("\n\n💡 **Track your shipment**: Use tracking number %s on %s website",
			o.TrackingNumber, o.CourierPartner))
	case model.OrderStatusOutForDelivery:
		b.WriteString("\n\n💡 **Be ready**: Keep your ID and order confirmation ready for delivery")
	case model.OrderStatusDelivered:
		b.WriteString("\n\n💡 **Next steps**: Download our app for service bookings and support")
	}

	b.WriteString("\n\n" + SupportLine)

	return b.String()
}

func statusHeadline(o model.Order) string {
	switch o.OrderStatus {
	case model.OrderStatusConfirmed:
		return fmt.Sprintf("✅ **Order Confirmed** - Your %s in %s has been confirmed and is being prepared for manufacturing.",
			o.ScooterModel, o.ScooterColor)
	case model.OrderStatusProcessing:
		return "⚙️ **Processing** - Your order is being processed. Manufacturing will begin shortly."
	case model.OrderStatusManufacturing:
		return "🏭 **Manufacturing** - Your scooter is currently being manufactured. Expected completion in 2-3 days."
	case model.OrderStatusQualityCheck:
		return "🔍 **Quality Check** - Your scooter has completed manufacturing and is undergoing final quality checks."
	case model.OrderStatusDispatched:
		return "📦 **Dispatched** - Great news! Your scooter has been dispatched and is on its way to you."
	case model.OrderStatusInTransit:
		return "🚛 **In Transit** - Your scooter is currently in transit and will reach you soon."
	case model.OrderStatusOutForDelivery:
		return "🏠 **Out for Delivery** - Your scooter is out for delivery and will be delivered today!"
	case model.OrderStatusDelivered:
		return "✅ **Delivered** - Your scooter has been successfully delivered. Enjoy your ride!"
	case model.OrderStatusCancelled:
		return "❌ **Cancelled** - This order has been cancelled. Refund will be processed according to our policy."
	default:
		// Unknown status falls back to the raw value rather than failing.
		return fmt.Sprintf("📋 **Status**: %s", o.OrderStatus)
	}
}

// NoOrdersMessage is returned when a mobile-number lookup finds nothing.
const NoOrdersMessage = `❌ **No orders found** with this mobile number. Please check:

• Make sure you're using the same mobile number used during ordering
• Try providing your order number (format: ES240XXX)
• Contact us at 1800-123-4567 if you need assistance

*You can also ask me "track order ES240XXX" with your specific order number.*`

// FormatOrderList renders a mobile-number lookup result: a help message for
// zero orders, the full single-order narrative for one, and a numbered summary
// for several (expected newest first, as returned by the store).
func FormatOrderList(orders []model.Order) string {
	switch len(orders) {
	case 0:
		return NoOrdersMessage
	case 1:
		return FormatStatus(orders[0])
	}

	var b strings.Builder
	b.WriteString("📋 **Multiple orders found** for this mobile number:\n\n")

	for i, o := range orders {
		b.WriteString(fmt.Sprintf("**%d. Order %s**\n", i+1, o.OrderNumber))
		b.WriteString(fmt.Sprintf("• %s (%s)\n", o.ScooterModel, o.ScooterColor))
		b.WriteString(fmt.Sprintf("• Status: %s\n", capitalize(string(o.OrderStatus))))
		b.WriteString(fmt.Sprintf("• Amount: ₹%s\n", FormatINR(o.OrderAmount)))
		if o.EstimatedDeliveryDate != nil {
			b.WriteString(fmt.Sprintf("• Expected Delivery: %s\n", o.EstimatedDeliveryDate.Format(shortDateFormat)))
		}
		b.WriteString("\n")
	}

	b.WriteString(`*Ask me "track order [ORDER_NUMBER]" for detailed status of any specific order.*`)

	return b.String()
}

// FormatINR renders an amount with Indian digit grouping: the last three digits
// form one group, every group above that has two (1234567 → 12,34,567).
func FormatINR(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	whole := int64(amount)
	frac := amount - float64(whole)

	digits := fmt.Sprintf("%d", whole)
	var groups []string
	if len(digits) > 3 {
		head := digits[:len(digits)-3]
		groups = append(groups, digits[len(digits)-3:])
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		groups = append([]string{head}, groups...)
	} else {
		groups = []string{digits}
	}

	out := strings.Join(groups, ",")
	if frac > 0.005 {
		out += strings.TrimPrefix(fmt.Sprintf("%.2f", frac), "0")
	}
	if negative {
		out = "-" + out
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
