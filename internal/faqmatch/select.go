package faqmatch

import "voltassist/internal/model"

// SelectBest scores every FAQ against the utterance and returns the single best
// match, or ok=false when no entry clears both the final-score and relevance
// thresholds. Comparison is strict, so ties keep the earlier FAQ, and the result
// is deterministic for a fixed FAQ order.
func (m *Matcher) SelectBest(utterance string, faqs []model.FAQ) (model.FAQ, bool) {
	if utterance == "" || len(faqs) == 0 {
		return model.FAQ{}, false
	}

	a := Analyze(utterance)

	var best model.FAQ
	var found bool
	highest := 0.0

	for _, faq := range faqs {
		s := m.score(a, faq)
		if s.FinalScore > highest && s.FinalScore >= m.w.MinFinalScore && s.RelevanceScore >= m.w.MinRelevance {
			highest = s.FinalScore
			best = faq
			found = true
		}
	}

	return best, found
}
