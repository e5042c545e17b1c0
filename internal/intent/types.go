package intent

// Detection is the result of order-intent analysis for one utterance. The two
// signals are independent: a specific order number can appear without any of
// the query phrases, and vice versa. Either alone routes to order handling.
type Detection struct {
	IsOrderQuery bool
	OrderNumber  string // normalized to upper case; empty when absent
}

// HasOrderIntent reports whether either signal fired.
func (d Detection) HasOrderIntent() bool {
	return d.IsOrderQuery || d.OrderNumber != ""
}
