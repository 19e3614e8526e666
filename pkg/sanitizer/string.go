package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeUnicode converts s to Unicode Normalization Form C so that
// visually identical input composed differently is treated the same.
func NormalizeUnicode(s string) string {
	return norm.NFC.String(s)
}

// RemoveControlChars removes control characters, keeping \n, \r and \t.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// SingleLine replaces line breaks with spaces and collapses whitespace.
// Use it for values that end up in headers, such as email subjects.
func SingleLine(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}
