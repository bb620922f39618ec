package domain

import (
	"strings"
	"unicode"
)

// NormalizeText reduces card text to the form used for identity: lower
// case, no leading or trailing whitespace, inner whitespace runs collapsed
// to a single space. Cyrillic letters, diacritics, hyphens and apostrophes
// are kept.
func NormalizeText(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	pendingSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			pendingSpace = b.Len() > 0
			continue
		}
		if pendingSpace {
			b.WriteByte(' ')
			pendingSpace = false
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
