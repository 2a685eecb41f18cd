package wikitext

import "unicode/utf8"

// Excerpt returns up to radius runes of the source before and after the byte position.
// A position inside a multi-byte rune is moved back to the rune start, a position out of
// the source bounds is clamped.
func Excerpt(source string, pos, radius int) (before, after string) {
	pos = min(max(pos, 0), len(source))
	radius = max(radius, 0)

	for pos > 0 && pos < len(source) && !utf8.RuneStart(source[pos]) {
		pos--
	}

	start := pos
	for i := 0; i < radius && start > 0; i++ {
		_, width := utf8.DecodeLastRuneInString(source[:start])
		start -= width
	}

	end := pos
	for i := 0; i < radius && end < len(source); i++ {
		_, width := utf8.DecodeRuneInString(source[end:])
		end += width
	}

	return source[start:pos], source[pos:end]
}

// RuneIndex converts the byte position into the index of the rune in the source.
func RuneIndex(source string, pos int) int {
	pos = min(max(pos, 0), len(source))
	return utf8.RuneCountInString(source[:pos])
}
