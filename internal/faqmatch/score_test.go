package faqmatch

import (
	"testing"

	"voltassist/internal/model"
)

func chargingFAQ() model.FAQ {
	return model.FAQ{
		ID:       "faq-charge",
		Question: "How to charge the scooter",
		Answer:   "Plug the charger into a standard wall socket and connect it to the charging port under the seat.",
		Category: "charging",
		Keywords: []string{"charge", "charging", "battery"},
	}
}

func returnsFAQ() model.FAQ {
	return model.FAQ{
		ID:       "faq-returns",
		Question: "What is the return policy",
		Answer:   "Returns are accepted within 7 days of delivery with the original invoice.",
		Category: "returns",
		Keywords: []string{"return", "refund"},
	}
}

func TestScoreIdempotent(t *testing.T) {
	m := New()
	utterance := "How do I charge my scooter?"

	first := m.Score(utterance, chargingFAQ())
	second := m.Score(utterance, chargingFAQ())

	if first != second {
		t.Errorf("scoring is not idempotent: %+v vs %+v", first, second)
	}
}

func TestScoreChargingUtterance(t *testing.T) {
	m := New()
	s := m.Score("How do I charge my scooter?", chargingFAQ())

	if s.FinalScore < DefaultWeights().MinFinalScore {
		t.Errorf("expected final score >= %v, got %v", DefaultWeights().MinFinalScore, s.FinalScore)
	}
	if s.RelevanceScore < DefaultWeights().MinRelevance {
		t.Errorf("expected relevance >= %v, got %v", DefaultWeights().MinRelevance, s.RelevanceScore)
	}

	unrelated := m.Score("How do I charge my scooter?", returnsFAQ())
	if unrelated.FinalScore >= s.FinalScore {
		t.Errorf("unrelated FAQ scored %v, expected less than %v", unrelated.FinalScore, s.FinalScore)
	}
}

func TestScoreLowRelevanceCollapsesToZero(t *testing.T) {
	m := New()

	// A single weak answer-text hit cannot push relevance past the gate.
	s := m.Score("weather patterns", returnsFAQ())
	if s.FinalScore != 0 {
		t.Errorf("expected zero final score, got %v (relevance %v)", s.FinalScore, s.RelevanceScore)
	}
}

func TestKeywordWholeWordBeatsSubstring(t *testing.T) {
	m := New()
	faq := model.FAQ{
		ID:       "faq-battery",
		Question: "Battery care instructions",
		Answer:   "Avoid full discharges.",
		Keywords: []string{"charge"},
	}

	// "charge" as a whole word vs buried inside "supercharged".
	whole := m.Score("best way to charge", faq)
	substring := m.Score("best way to supercharged", faq)

	if whole.RawScore < substring.RawScore {
		t.Errorf("whole-word keyword raw score %v below substring score %v", whole.RawScore, substring.RawScore)
	}
	if whole.RelevanceScore < substring.RelevanceScore {
		t.Errorf("whole-word keyword relevance %v below substring relevance %v", whole.RelevanceScore, substring.RelevanceScore)
	}
}

func TestScoreEmptyUtterance(t *testing.T) {
	m := New()
	s := m.Score("", chargingFAQ())
	if s.RawScore != 0 || s.FinalScore != 0 {
		t.Errorf("expected zero scores for empty utterance, got %+v", s)
	}
}

func TestPhraseContainmentSignal(t *testing.T) {
	m := New()
	faq := model.FAQ{
		ID:       "faq-phrase",
		Question: "how to charge the scooter battery",
		Answer:   "Use the bundled charger.",
	}

	// The full utterance is one phrase and a substring of the question.
	withPhrase := m.Score("charge the scooter battery", faq)
	w := DefaultWeights()
	if withPhrase.RawScore < w.PhraseScore {
		t.Errorf("expected phrase signal in raw score, got %v", withPhrase.RawScore)
	}
}

func TestScoreCustomWeights(t *testing.T) {
	w := DefaultWeights()
	w.KeywordWholeScore = 100
	m := NewWithWeights(w)

	s := m.Score("battery help please", model.FAQ{
		ID:       "faq-kw",
		Question: "unrelated",
		Answer:   "unrelated",
		Keywords: []string{"battery"},
	})

	if s.RawScore < 100 {
		t.Errorf("custom keyword weight not applied, raw score %v", s.RawScore)
	}
}
