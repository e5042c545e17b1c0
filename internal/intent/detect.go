package intent

import "strings"

// Detect analyzes a raw utterance for order-tracking intent. Pure function; no
// errors possible.
func Detect(utterance string) Detection {
	lower := strings.ToLower(utterance)

	var d Detection
	for _, phrase := range orderQueryPhrases {
		if strings.Contains(lower, phrase) {
			d.IsOrderQuery = true
			break
		}
	}

	if match := orderNumberRe.FindString(utterance); match != "" {
		d.OrderNumber = strings.ToUpper(match)
	}

	return d
}
