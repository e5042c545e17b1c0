package faqmatch

// Analysis is the per-query view of a user utterance: normalized text, filtered
// tokens (in original order, duplicates kept), and sentence-delimited phrases.
// Computed once per routing call and discarded afterwards.
type Analysis struct {
	Normalized string
	Tokens     []string
	Phrases    []string
}

// MatchScore is the scoring result for one FAQ against one utterance.
type MatchScore struct {
	FAQID          string
	RawScore       float64
	RelevanceScore float64
	FinalScore     float64
}

// Weights holds every scoring constant. The defaults reproduce the hand-tuned
// production behavior exactly; they are exposed as configuration so they can be
// revisited without code changes.
type Weights struct {
	PhraseScore     float64 // utterance phrase found in question or answer
	PhraseRelevance float64
	BigramScore     float64 // adjacent token pair found in question or answer
	BigramRelevance float64

	ExactWordScore   float64 // token equals a question token
	PartialWordScore float64 // token and a question token contain each other
	AnswerWordScore  float64 // token appears in the answer text

	RelevanceBonus float64 // multiplied by matched/total token ratio

	KeywordWholeScore         float64 // keyword matches on a word boundary
	KeywordWholeRelevance     float64
	KeywordSubstringScore     float64 // keyword matches as plain substring
	KeywordSubstringRelevance float64

	// MinRelevanceForScore gates the final score: relevance must strictly
	// exceed it or the final score collapses to zero.
	MinRelevanceForScore float64
	// RelevanceDivisor scales relevance into the final multiplier.
	RelevanceDivisor float64

	// Selection thresholds.
	MinFinalScore float64
	MinRelevance  float64
}

// DefaultWeights returns the production scoring constants.
func DefaultWeights() Weights {
	return Weights{
		PhraseScore:     8,
		PhraseRelevance: 3,
		BigramScore:     6,
		BigramRelevance: 2,

		ExactWordScore:   4,
		PartialWordScore: 2,
		AnswerWordScore:  1,

		RelevanceBonus: 5,

		KeywordWholeScore:         6,
		KeywordWholeRelevance:     2,
		KeywordSubstringScore:     3,
		KeywordSubstringRelevance: 1,

		MinRelevanceForScore: 2,
		RelevanceDivisor:     5,

		MinFinalScore: 8,
		MinRelevance:  3,
	}
}
