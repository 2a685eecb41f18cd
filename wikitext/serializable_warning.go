package wikitext

// SerializableWarning is a serializable human-readable description of the issue found in the input.
type SerializableWarning struct {
	// ByteIdx is the position of the starting byte of the erroneous sequence in the input.
	ByteIdx int `json:"byte_idx"`
	// SymbolIdx is the position of the symbol/letter causing the issue.
	SymbolIdx int `json:"symbol_idx"`
	// Issue is the name of the issue.
	Issue string `json:"issue"`
	// Description is a human-readable description of the issue.
	Description string `json:"description"`
	// Before is the excerpt of the input preceding the problem.
	Before string `json:"before,omitempty"`
	// After is the excerpt of the input starting at the problem.
	After string `json:"after,omitempty"`
}

// Serialize converts the Warning into a SerializableWarning. The excerpts are filled
// only for a positive radius.
func (w Warning) Serialize(source string, radius int) SerializableWarning {
	sw := SerializableWarning{
		ByteIdx:     w.Pos,
		SymbolIdx:   RuneIndex(source, w.Pos),
		Issue:       w.Issue.String(),
		Description: w.Description,
	}

	if radius > 0 {
		sw.Before, sw.After = Excerpt(source, w.Pos, radius)
	}

	return sw
}

// SerializeWarnings converts a slice of Warnings to SerializableWarnings.
func SerializeWarnings(source string, warns []Warning, radius int) []SerializableWarning {
	out := make([]SerializableWarning, 0, len(warns))
	for _, w := range warns {
		out = append(out, w.Serialize(source, radius))
	}
	return out
}
