package textutil

import (
	"strings"
	"unicode"
)

// SplitLines splits s on "\n", "\r\n" and a lone "\r". Terminators are
// dropped and a trailing terminator does not start an extra empty line.
func SplitLines(s string) []string {
	var lines []string
	for len(s) > 0 {
		i := strings.IndexAny(s, "\r\n")
		if i < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, s[:i])
		if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
			i++
		}
		s = s[i+1:]
	}
	return lines
}

// HasNonASCII reports whether s holds any rune above U+007F.
// U+FFFD from a failed decode counts.
func HasNonASCII(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return true
		}
	}
	return false
}

// Strip trims leading and trailing whitespace, including the ASCII
// separator controls U+001C..U+001F.
func Strip(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
