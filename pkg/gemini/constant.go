package gemini

import "time"

const (
	// DefaultModel is the default Gemini model.
	DefaultModel = "gemini-1.5-flash-latest"

	// DefaultAPIURL is the default Gemini API endpoint.
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second
)

// Generation settings for support completions. Hand-tuned; keep in sync with the
// prompt in prompt.go.
const (
	CompletionTemperature = 0.7
	CompletionTopK        = 32
	CompletionTopP        = 1.0
	CompletionMaxTokens   = 300
)
