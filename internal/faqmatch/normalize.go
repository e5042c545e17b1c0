package faqmatch

import (
	"regexp"
	"strings"
)

var alphabeticRe = regexp.MustCompile(`^[a-zA-Z]+$`)

// Normalize lowercases and trims an utterance.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// Tokenize splits normalized text on whitespace and keeps tokens longer than
// two characters that are purely alphabetic and not stop words. Order and
// duplicates are preserved so bigram matching sees the original sequence.
func Tokenize(normalized string) []string {
	fields := strings.Fields(normalized)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) <= minTokenLen {
			continue
		}
		if _, stop := stopWords[f]; stop {
			continue
		}
		if !alphabeticRe.MatchString(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// SplitPhrases breaks normalized text on sentence delimiters and keeps trimmed
// segments longer than five characters.
func SplitPhrases(normalized string) []string {
	segments := strings.FieldsFunc(normalized, func(r rune) bool {
		switch r {
		case '.', '!', '?', ';', ',':
			return true
		}
		return false
	})

	phrases := make([]string, 0, len(segments))
	for _, s := range segments {
		s = strings.TrimSpace(s)
		if len(s) > minPhraseLen {
			phrases = append(phrases, s)
		}
	}
	return phrases
}

// Analyze runs the full normalize/tokenize/phrase pipeline on a raw utterance.
func Analyze(text string) Analysis {
	normalized := Normalize(text)
	return Analysis{
		Normalized: normalized,
		Tokens:     Tokenize(normalized),
		Phrases:    SplitPhrases(normalized),
	}
}
