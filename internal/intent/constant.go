package intent

import "regexp"

// orderQueryPhrases marks an utterance as an order-tracking query when any one
// of them appears in the lower-cased text.
var orderQueryPhrases = []string{
	"order status",
	"track order",
	"where is my order",
	"where is my scooter",
	"delivery status",
	"order number",
	"tracking",
	"delivery",
}

// orderNumberRe matches the order-number format: literal ES240 prefix followed
// by exactly three digits, case-insensitive.
var orderNumberRe = regexp.MustCompile(`(?i)ES240\d{3}`)
