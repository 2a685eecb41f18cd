package wikitext

// TokenType defines what kind of construct the [Token] represents.
type TokenType int

const (
	// TokenText means the [Token] contains plain text.
	TokenText TokenType = iota

	// TokenOpenTag opens a construct which expects a [TokenCloseTag] with the same Name,
	// e.g. "[b]", "[if:Flag]" or the bangs of a wiki header.
	TokenOpenTag

	// TokenCloseTag closes the construct with the same Name, e.g. "[/b]" or "[endif]".
	// Wiki headers are closed by the end of their line.
	TokenCloseTag

	// TokenDirective is a self-contained construct: a module call, a link, a content
	// reference, a separator or a raw HTML tag.
	TokenDirective
)

// Token is the result of the first stage processing of a part of the input string.
// It never owns any text: all string values are recovered from the source through spans.
type Token struct {
	// Type defines the type of the Token.
	Type TokenType

	// Name is the canonical name of the construct, e.g. "h3", "if", "module", "link",
	// "submission", "b", "quote" or "html". For text tokens produced from a malformed
	// directive it names the directive.
	Name string

	// Pos defines the starting byte position of the Token in the input string.
	Pos int

	// Width defines count of bytes consumed by the Token.
	Width int

	// Payload defines the bounds of the Token's main semantic content within the input string.
	//
	// The meaning depends on the Token:
	//   - text: the literal run.
	//   - "if": the flag name.
	//   - "module": the raw option string after the first '|'.
	//   - "link": the target.
	//   - content references: the numeric id.
	//   - BBCode open tags: the argument after '='.
	//   - "html": the whole tag.
	Payload Span

	// Arg defines the secondary value: the module name for "module" and the link
	// text for "link". Empty for other Tokens.
	Arg Span

	// Issue is set on text Tokens which were produced from a malformed construct.
	Issue Issue
}

// Raw returns the part of the source consumed by the Token.
func (t Token) Raw(src string) string {
	return src[t.Pos : t.Pos+t.Width]
}

// End is the exclusive end position of the Token in the source.
func (t Token) End() int {
	return t.Pos + t.Width
}
