// Package table interprets rows of a semi-structured table: it locates the
// coordinate columns, splits rows into per-figure blocks and extracts the
// ordered vertices of each block.
package table

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var upper = cases.Upper(language.Und)

// Normalize canonicalizes header text for matching: trimmed, upper-cased
// and stripped of diacritics. A nil value normalizes to "".
func Normalize(v interface{}) string {
	var s string
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		s = t
	default:
		s = fmt.Sprint(t)
	}

	s = upper.String(strings.TrimSpace(s))

	// A fresh chain per call: transform.Chain is stateful.
	strip := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(strip, s)
	if err != nil {
		return s
	}
	return out
}
