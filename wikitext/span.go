package wikitext

// Span defines bounds of the window view of a string.
type Span struct {
	// Start defines the inclusive start of the view.
	Start int

	// End defines the exclusive end of the view.
	End int
}

// NewSpan creates new Span from the startIdx and the width.
// End index is calculated as startIdx + width.
func NewSpan(startIdx int, width int) Span {
	return Span{startIdx, startIdx + width}
}

// Width is the number of bytes covered by the Span.
func (s Span) Width() int {
	return s.End - s.Start
}

// Of returns the part of src covered by the Span.
func (s Span) Of(src string) string {
	return src[s.Start:s.End]
}
