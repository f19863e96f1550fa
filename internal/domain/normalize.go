package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeQuery prepares user input for transliteration:
//   - converts to Unicode NFC, so "й" typed as "и" + combining breve
//     matches the character tables
//   - trims leading/trailing whitespace
//   - compresses runs of whitespace into a single space
//
// Case is preserved: the character tables are case-aware.
func NormalizeQuery(text string) string {
	text = strings.TrimSpace(norm.NFC.String(text))
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteByte(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
