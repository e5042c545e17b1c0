package repository

import "strings"

// MobileSearchPatterns expands a raw mobile number into the normalized forms
// matched against the store: the cleaned number, with the +91 / 91 country
// prefix, and with a leading 91 stripped. Separators and spaces are removed
// before expansion.
func MobileSearchPatterns(mobile string) []string {
	clean := strings.NewReplacer(" ", "", "-", "", "+", "").Replace(mobile)

	withoutPrefix := clean
	if strings.HasPrefix(clean, "91") && len(clean) > 10 {
		withoutPrefix = clean[2:]
	}

	return []string{
		clean,
		"+91" + clean,
		"91" + clean,
		withoutPrefix,
	}
}
