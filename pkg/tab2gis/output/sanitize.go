package output

import (
	"strings"
	"unicode"
)

// Sanitize makes name usable as a file name or DXF layer: letters, digits,
// '_' and '-' are kept and everything else becomes '_'.
func Sanitize(name string) string {
	s := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' {
			return r
		}
		return '_'
	}, name)
	if s == "" {
		return "figure"
	}
	return s
}
