package faqmatch

// stopWords are common English function words excluded from token matching.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"will": {}, "would": {}, "could": {}, "should": {}, "may": {}, "might": {},
	"can": {}, "my": {}, "your": {}, "his": {}, "its": {}, "our": {},
	"their": {}, "this": {}, "that": {}, "these": {}, "those": {}, "i": {},
	"you": {}, "he": {}, "she": {}, "it": {}, "we": {}, "they": {}, "me": {},
	"him": {}, "her": {}, "us": {}, "them": {},
}

// Token and phrase length cutoffs (strict greater-than).
const (
	minTokenLen  = 2
	minPhraseLen = 5

	// partialMatchMinLen is the minimum token length for partial (substring)
	// word matching. Short tokens produce too many false positives.
	partialMatchMinLen = 4
)
