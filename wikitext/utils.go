package wikitext

import "strings"

// isDigit return true if b is one of 0 1 2 3 4 5 6 7 8 9.
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// isASCIIAlpha return true if b is a Latin letter in any case.
func isASCIIAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// isWordByte reports whether b can be a part of a word. Every byte of a multi-byte
// UTF-8 sequence counts as a word byte, so "ф100S" is not a reference.
func isWordByte(b byte) bool {
	return isDigit(b) || isASCIIAlpha(b) || b == '_' || b >= 0x80
}

// indexFold returns the index of the first ASCII case-insensitive occurrence of substr
// in s, or -1. substr must be ASCII.
func indexFold(s, substr string) int {
	m := len(substr)
	if m == 0 {
		return 0
	}

	first := substr[0]
	lower, upper := toLowerASCII(first), toUpperASCII(first)

	for i := 0; i+m <= len(s); i++ {
		c := s[i]
		if c != lower && c != upper {
			continue
		}
		if strings.EqualFold(s[i:i+m], substr) {
			return i
		}
	}

	return -1
}

func toLowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func toUpperASCII(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
