// Package linebreak classifies line terminators.
//
// A terminator is any rune that forces a mandatory line break under UAX #14
// (LF, VT, FF, CR, NEL, LS, PS). The pair "\r\n" is one terminator. IsBreak
// is the only definition of the set; every other function here uses it.
package linebreak

import (
	"strings"
	"unicode/utf8"
)

// IsBreak reports whether r terminates a line on its own.
func IsBreak(r rune) bool {
	switch r {
	case '\n', '\v', '\f', '\r', '\u0085', '\u2028', '\u2029':
		return true
	default:
		return false
	}
}

// TrimTrailing returns line without the terminator that ends it, if any.
func TrimTrailing(line string) string {
	if trimmed, ok := strings.CutSuffix(line, "\r\n"); ok {
		return trimmed
	}
	r, size := utf8.DecodeLastRuneInString(line)
	if !IsBreak(r) {
		return line
	}
	return line[:len(line)-size]
}

// TrailingLenRunes returns the rune length of the terminator ending line:
// 0 when there is none, 2 for "\r\n", 1 otherwise.
func TrailingLenRunes(line []rune) int {
	n := len(line)
	if n == 0 || !IsBreak(line[n-1]) {
		return 0
	}
	if n >= 2 && line[n-2] == '\r' && line[n-1] == '\n' {
		return 2
	}
	return 1
}

// Next returns the length in runes of the terminator starting at s[i],
// or 0 when s[i] is not a terminator.
func Next(s []rune, i int) int {
	if i < 0 || i >= len(s) || !IsBreak(s[i]) {
		return 0
	}
	if s[i] == '\r' && i+1 < len(s) && s[i+1] == '\n' {
		return 2
	}
	return 1
}
