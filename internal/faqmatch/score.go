package faqmatch

import (
	"fmt"
	"regexp"
	"strings"

	"voltassist/internal/model"
)

// Score computes the multi-signal match score between a raw utterance and one
// FAQ entry. Pure function of its inputs; calling it twice yields identical
// results.
func (m *Matcher) Score(utterance string, faq model.FAQ) MatchScore {
	return m.score(Analyze(utterance), faq)
}

func (m *Matcher) score(a Analysis, faq model.FAQ) MatchScore {
	questionLower := strings.ToLower(faq.Question)
	answerLower := strings.ToLower(faq.Answer)
	questionTokens := Tokenize(questionLower)

	var raw, relevance float64

	// Exact phrase containment carries the highest weight.
	for _, phrase := range a.Phrases {
		if strings.Contains(questionLower, phrase) || strings.Contains(answerLower, phrase) {
			raw += m.w.PhraseScore
			relevance += m.w.PhraseRelevance
		}
	}

	// Adjacent token pairs.
	for i := 0; i+1 < len(a.Tokens); i++ {
		bigram := a.Tokens[i] + " " + a.Tokens[i+1]
		if strings.Contains(questionLower, bigram) || strings.Contains(answerLower, bigram) {
			raw += m.w.BigramScore
			relevance += m.w.BigramRelevance
		}
	}

	// Individual token matching: exact question token, then partial match for
	// longer tokens, then answer-text containment as a last resort.
	matchedWords := 0
	for _, tok := range a.Tokens {
		matched := false

		for _, qt := range questionTokens {
			if tok == qt {
				raw += m.w.ExactWordScore
				matchedWords++
				matched = true
				break
			}
		}

		if !matched && len(tok) > partialMatchMinLen {
			for _, qt := range questionTokens {
				if strings.Contains(qt, tok) || strings.Contains(tok, qt) {
					raw += m.w.PartialWordScore
					matchedWords++
					matched = true
					break
				}
			}
		}

		if !matched && strings.Contains(answerLower, tok) {
			raw += m.w.AnswerWordScore
			matchedWords++
		}
	}

	// Relevance bonus proportional to the fraction of tokens that matched.
	if len(a.Tokens) > 0 {
		relevance += float64(matchedWords) / float64(len(a.Tokens)) * m.w.RelevanceBonus
	}

	// Keyword signal: a whole-word hit replaces the plain substring hit for
	// that keyword, it does not stack.
	for _, keyword := range faq.Keywords {
		kw := strings.ToLower(keyword)
		if kw == "" || !strings.Contains(a.Normalized, kw) {
			continue
		}
		if matchesWholeWord(a.Normalized, kw) {
			raw += m.w.KeywordWholeScore
			relevance += m.w.KeywordWholeRelevance
		} else {
			raw += m.w.KeywordSubstringScore
			relevance += m.w.KeywordSubstringRelevance
		}
	}

	final := 0.0
	if relevance > m.w.MinRelevanceForScore {
		final = raw * (relevance / m.w.RelevanceDivisor)
	}

	return MatchScore{
		FAQID:          faq.ID,
		RawScore:       raw,
		RelevanceScore: relevance,
		FinalScore:     final,
	}
}

func matchesWholeWord(text, keyword string) bool {
	re, err := regexp.Compile(fmt.Sprintf(`\b%s\b`, regexp.QuoteMeta(keyword)))
	if err != nil {
		return false
	}
	return re.MatchString(text)
}
