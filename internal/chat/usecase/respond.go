package usecase

import (
	"context"
	"fmt"
	"strings"

	"voltassist/internal/intent"
	"voltassist/internal/order"
)

const aiSuffix = "\n\n*This response is powered by AI. If you need more specific information, please contact our support team at 1800-123-4567.*"

const orderHelpMessage = `I can help you track your order! Please share:

• Your order number (format: ES240XXX), or
• The mobile number you used while placing the order

*For example, ask me "track order ES240123".*`

func orderNotFoundMessage(orderNumber string) string {
	return fmt.Sprintf(`❌ **Order not found** - I couldn't find an order with number %s. Please check:

• Make sure the order number is correct (format: ES240XXX)
• Try searching with your registered mobile number instead
• Contact us at 1800-123-4567 if you need assistance`, orderNumber)
}

func fallbackMessage(utterance string) string {
	return fmt.Sprintf(`I'd be happy to help you with your electric scooter question! While I don't have a specific answer for "%s" in my current knowledge base, here are some general tips:

• Check our FAQ sections for common questions about battery, charging, maintenance, and safety
• For technical issues, ensure your scooter is charged and all connections are secure
• For warranty or specific model questions, please contact our support team

Is there anything specific about electric scooters I can help you with? I have information about range, charging, speed, maintenance, safety gear, and more!`, utterance)
}

// generateResponse decides what the assistant says. First matching branch
// wins: specific order number, generic order query (with and without a known
// mobile), FAQ match, AI completion, static fallback. Every lookup failure is
// absorbed here; the caller always gets display text.
func (uc *implUsecase) generateResponse(ctx context.Context, utterance, mobile, contextText string) string {
	det := intent.Detect(utterance)

	if det.OrderNumber != "" {
		o, err := uc.orders.GetOrderByNumber(ctx, det.OrderNumber)
		if err != nil {
			uc.l.Warnf(ctx, "chat.usecase.generateResponse: order lookup: %v", err)
		}
		if err == nil && o.OrderNumber != "" {
			return order.FormatStatus(o)
		}
		return orderNotFoundMessage(det.OrderNumber)
	}

	if det.IsOrderQuery && mobile != "" {
		orders, err := uc.orders.ListOrdersByMobile(ctx, mobile)
		if err != nil {
			uc.l.Warnf(ctx, "chat.usecase.generateResponse: orders by mobile: %v", err)
			orders = nil
		}
		return order.FormatOrderList(orders)
	}

	if det.IsOrderQuery {
		return orderHelpMessage
	}

	faqs, err := uc.faqRepo.ListFAQs(ctx)
	if err != nil {
		// Degraded mode: keep routing with an empty catalogue.
		uc.l.Warnf(ctx, "chat.usecase.generateResponse: list FAQs: %v", err)
		faqs = nil
	}
	if best, ok := uc.matcher.SelectBest(utterance, faqs); ok {
		return fmt.Sprintf("%s\n\n*This answer is based on our FAQ: %q*", best.Answer, best.Question)
	}

	if uc.ai != nil {
		text, err := uc.ai.Complete(ctx, utterance, contextText)
		if err != nil {
			uc.l.Warnf(ctx, "chat.usecase.generateResponse: AI completion: %v", err)
		} else if strings.TrimSpace(text) != "" {
			return text + aiSuffix
		}
	}

	return fallbackMessage(utterance)
}
