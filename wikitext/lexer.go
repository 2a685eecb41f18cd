package wikitext

// lexer holds the state of a single tokenization run.
type lexer struct {
	src     string
	dialect Dialect

	tokens []Token

	// i is the current position in src.
	i int

	// textStart is the position where the current plain text run started.
	textStart int

	// header is the name of the wiki header opened on the current line, empty if none.
	header string
}

// Tokenize transforms the source into the sequence of Tokens according to the dialect.
// It never fails: anything which does not form a valid construct ends up in a text Token.
// The dialect is expected to be valid, see [Dialect.Validate].
func Tokenize(source string, dialect Dialect) []Token {
	lx := lexer{
		src:     source,
		dialect: dialect,
		tokens:  make([]Token, 0, len(source)/bytesPerToken+1),
	}

	lx.run()

	return lx.tokens
}

func (lx *lexer) run() {
	n := len(lx.src)
	wiki := lx.dialect.IsWiki()
	bbcode := lx.dialect.bbcode()
	html := lx.dialect.html()

	for lx.i < n {
		c := lx.src[lx.i]

		var consumed bool

		switch {
		case wiki && lx.header != "" && (c == '\n' || c == '\r'):
			consumed = lx.lexHeaderEnd()

		case wiki && c == '!' && lx.atLineStart():
			consumed = lx.lexHeader()

		case wiki && c == '-' && lx.atLineStart():
			consumed = lx.lexSeparator()

		case wiki && c == '[':
			consumed = lx.lexWikiBracket()

		case wiki && isDigit(c):
			consumed = lx.lexContentRef()

		case bbcode && c == '[':
			consumed = lx.lexBBCode()

		case html && c == '<':
			consumed = lx.lexHTML()
		}

		// if the current byte is special but is not a part of any construct
		// we consider it as a plain text and move on
		if !consumed {
			lx.i++
		}
	}

	lx.flushText(n)

	// a header on the last line is closed by the end of the input
	if lx.header != "" {
		lx.tokens = append(lx.tokens, Token{
			Type:    TokenCloseTag,
			Name:    lx.header,
			Pos:     n,
			Payload: Span{n, n},
		})
		lx.header = ""
	}
}

// atLineStart is true when the current byte is the first on its line.
func (lx *lexer) atLineStart() bool {
	return lx.i == 0 || lx.src[lx.i-1] == '\n'
}

// flushText appends the pending plain text up to end as a text Token, if it's not empty.
func (lx *lexer) flushText(end int) {
	if end > lx.textStart {
		lx.tokens = append(lx.tokens, Token{
			Type:    TokenText,
			Pos:     lx.textStart,
			Width:   end - lx.textStart,
			Payload: Span{lx.textStart, end},
		})
	}
	lx.textStart = end
}

// emit flushes the pending text, appends the Token and moves past it.
func (lx *lexer) emit(tok Token) {
	lx.flushText(tok.Pos)
	lx.tokens = append(lx.tokens, tok)
	lx.i = tok.End()
	lx.textStart = lx.i
}

// emitText appends a text Token starting at the current position. The Token consumes
// width bytes while its content is the payload; this covers escapes like "[[" and
// the literal text of malformed directives, which carry an Issue.
func (lx *lexer) emitText(name string, payload Span, width int, issue Issue) {
	lx.emit(Token{
		Type:    TokenText,
		Name:    name,
		Pos:     lx.i,
		Width:   width,
		Payload: payload,
		Issue:   issue,
	})
}
