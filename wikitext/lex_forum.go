package wikitext

import "strings"

// lexBBCode processes "[name]", "[name=arg]" and "[/name]" for the forum vocabulary.
// Unknown names are left as plain text.
func (lx *lexer) lexBBCode() bool {
	src := lx.src
	n := len(src)
	i := lx.i

	// 1. Check for the closing slash
	j := i + 1
	closing := j < n && src[j] == '/'
	if closing {
		j++
	}

	// 2. Read the name, which is either letters or a lone star
	nameStart := j
	if j < n && src[j] == '*' {
		j++
	} else {
		for j < n && isASCIIAlpha(src[j]) {
			j++
		}
	}

	if j == nameStart {
		return false
	}

	name, ok := bbcodeTags[strings.ToLower(src[nameStart:j])]
	if !ok {
		return false
	}

	// 3. Read the optional argument, only opening tags can have one
	arg := Span{j, j}

	if !closing && j < n && src[j] == '=' {
		end := findBracketEnd(src, j+1)
		if end < 0 {
			return false
		}
		arg = Span{j + 1, end}
		j = end
	}

	if j >= n || src[j] != ']' {
		return false
	}
	j++

	if closing {
		lx.emit(Token{
			Type:    TokenCloseTag,
			Name:    name,
			Pos:     i,
			Width:   j - i,
			Payload: Span{i, i},
		})
		return true
	}

	lx.emit(Token{
		Type:    TokenOpenTag,
		Name:    name,
		Pos:     i,
		Width:   j - i,
		Payload: arg,
	})

	// 4. Verbatim tags swallow everything up to their own closing tag
	if verbatimTags[name] {
		lx.lexVerbatimBody(name)
	}

	return true
}

// lexVerbatimBody emits the body of "[code]" or "[noparse]" as a single text Token,
// followed by the closing tag if there is one. Without the closing tag the rest of the
// input is the body and the parser reports the unclosed tag.
func (lx *lexer) lexVerbatimBody(name string) {
	closeSeq := "[/" + name + "]"
	start := lx.i

	idx := indexFold(lx.src[start:], closeSeq)
	if idx < 0 {
		lx.i = len(lx.src)
		return
	}

	bodyEnd := start + idx

	// the body is flushed as plain text by emit
	lx.emit(Token{
		Type:    TokenCloseTag,
		Name:    name,
		Pos:     bodyEnd,
		Width:   len(closeSeq),
		Payload: Span{bodyEnd, bodyEnd},
	})
}

// lexHTML processes "<tag ...>", "</tag>" and "<tag/>". The tag must start with a letter
// and end before the next '<'. The whole tag is the payload and is sanitized at render time.
func (lx *lexer) lexHTML() bool {
	src := lx.src
	n := len(src)
	i := lx.i

	j := i + 1
	if j < n && src[j] == '/' {
		j++
	}

	if j >= n || !isASCIIAlpha(src[j]) {
		return false
	}

	for ; j < n; j++ {
		switch src[j] {
		case '>':
			lx.emit(Token{
				Type:    TokenDirective,
				Name:    NameHTML,
				Pos:     i,
				Width:   j + 1 - i,
				Payload: Span{i, j + 1},
			})
			return true

		case '<':
			return false
		}
	}

	return false
}
