package faqmatch

// Matcher scores user utterances against FAQ entries. Stateless apart from its
// weights; safe for concurrent use.
type Matcher struct {
	w Weights
}

// New creates a Matcher with the default production weights.
func New() *Matcher {
	return NewWithWeights(DefaultWeights())
}

// NewWithWeights creates a Matcher with custom weights.
func NewWithWeights(w Weights) *Matcher {
	return &Matcher{w: w}
}
