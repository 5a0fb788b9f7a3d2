// Package text provides normalization and lightweight parsing of free-form
// posting and profile text.
package text

import (
	"strings"
	"unicode"
)

// Normalize lowercases the input, replaces every character that is not a
// letter, digit, or whitespace with a space, collapses runs of whitespace to
// single spaces, and trims. Empty input yields an empty string.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
