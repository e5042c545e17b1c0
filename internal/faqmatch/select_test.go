package faqmatch

import (
	"testing"

	"voltassist/internal/model"
)

func TestSelectBestPicksChargingFAQ(t *testing.T) {
	m := New()
	faqs := []model.FAQ{returnsFAQ(), chargingFAQ()}

	best, ok := m.SelectBest("How do I charge my scooter?", faqs)
	if !ok {
		t.Fatalf("expected a match")
	}
	if best.ID != "faq-charge" {
		t.Errorf("expected faq-charge, got %s", best.ID)
	}
}

func TestSelectBestNoMatch(t *testing.T) {
	m := New()
	faqs := []model.FAQ{chargingFAQ(), returnsFAQ()}

	if _, ok := m.SelectBest("completely unrelated gibberish zzz", faqs); ok {
		t.Errorf("expected no match for unrelated utterance")
	}
}

func TestSelectBestEmptyInputs(t *testing.T) {
	m := New()

	if _, ok := m.SelectBest("", []model.FAQ{chargingFAQ()}); ok {
		t.Errorf("expected no match for empty utterance")
	}
	if _, ok := m.SelectBest("how do i charge", nil); ok {
		t.Errorf("expected no match for empty FAQ set")
	}
}

func TestSelectBestThresholds(t *testing.T) {
	// Raise the final-score bar beyond reach; even a good match must be rejected.
	w := DefaultWeights()
	w.MinFinalScore = 10000
	m := NewWithWeights(w)

	if _, ok := m.SelectBest("How do I charge my scooter?", []model.FAQ{chargingFAQ()}); ok {
		t.Errorf("expected rejection when final score threshold is not met")
	}

	// Same for the relevance floor.
	w = DefaultWeights()
	w.MinRelevance = 10000
	m = NewWithWeights(w)

	if _, ok := m.SelectBest("How do I charge my scooter?", []model.FAQ{chargingFAQ()}); ok {
		t.Errorf("expected rejection when relevance threshold is not met")
	}
}

func TestSelectBestTieKeepsEarlier(t *testing.T) {
	m := New()
	first := chargingFAQ()
	second := chargingFAQ()
	second.ID = "faq-charge-duplicate"

	best, ok := m.SelectBest("How do I charge my scooter?", []model.FAQ{first, second})
	if !ok {
		t.Fatalf("expected a match")
	}
	if best.ID != "faq-charge" {
		t.Errorf("tie should keep the earlier FAQ, got %s", best.ID)
	}
}
