package wikitext

import "strings"

const (
	modulePrefix = "[module:"
	ifPrefix     = "[if:"
	endifTag     = "[endif]"
)

// lexHeader processes a run of bangs at the start of a line.
// More than [MaxHeaderBangs] bangs are not a header.
func (lx *lexer) lexHeader() bool {
	n := len(lx.src)
	j := lx.i

	for j < n && lx.src[j] == '!' {
		j++
	}

	bangs := j - lx.i
	if bangs > MaxHeaderBangs {
		// skipping the whole run, so the next bang is not considered to be at the line start
		lx.i = j
		return true
	}

	// the spaces between the bangs and the title belong to the opening tag
	for j < n && (lx.src[j] == ' ' || lx.src[j] == '\t') {
		j++
	}

	name := headerNames[bangs]
	lx.emit(Token{
		Type:    TokenOpenTag,
		Name:    name,
		Pos:     lx.i,
		Width:   j - lx.i,
		Payload: Span{j, j},
	})
	lx.header = name

	return true
}

// lexHeaderEnd closes the current header at the line break, consuming it.
func (lx *lexer) lexHeaderEnd() bool {
	width := 1

	if lx.src[lx.i] == '\r' {
		if lx.i+1 >= len(lx.src) || lx.src[lx.i+1] != '\n' {
			return false
		}
		width = 2
	}

	lx.emit(Token{
		Type:    TokenCloseTag,
		Name:    lx.header,
		Pos:     lx.i,
		Width:   width,
		Payload: Span{lx.i, lx.i},
	})
	lx.header = ""

	return true
}

// lexSeparator processes a line of at least [MinSeparatorDashes] dashes, optionally
// followed by spaces. The line break after it is consumed.
func (lx *lexer) lexSeparator() bool {
	n := len(lx.src)
	j := lx.i

	for j < n && lx.src[j] == '-' {
		j++
	}

	if j-lx.i < MinSeparatorDashes {
		return false
	}

	for j < n && (lx.src[j] == ' ' || lx.src[j] == '\t' || lx.src[j] == '\r') {
		j++
	}

	switch {
	case j == n:
	case lx.src[j] == '\n':
		j++
	default:
		// something else follows the dashes on the same line
		return false
	}

	lx.emit(Token{
		Type:    TokenDirective,
		Name:    NameSeparator,
		Pos:     lx.i,
		Width:   j - lx.i,
		Payload: Span{lx.i, lx.i},
	})

	return true
}

// lexWikiBracket processes everything starting with '[' in the wiki dialect:
// escapes, module calls, conditionals and links.
func (lx *lexer) lexWikiBracket() bool {
	src := lx.src
	i := lx.i
	rest := src[i:]

	// 1. "[[" is an escaped literal bracket
	if strings.HasPrefix(rest, "[[") {
		lx.emitText("", Span{i, i + 1}, 2, IssueNone)
		return true
	}

	end := findBracketEnd(src, i+1)

	switch {
	// 2. Module call
	case strings.HasPrefix(rest, modulePrefix):
		return lx.lexModule(end)

	// 3. Conditional start
	case strings.HasPrefix(rest, ifPrefix):
		return lx.lexIf(end)

	// 4. Conditional end
	case strings.HasPrefix(rest, endifTag):
		lx.emit(Token{
			Type:    TokenCloseTag,
			Name:    NameConditional,
			Pos:     i,
			Width:   len(endifTag),
			Payload: Span{i, i},
		})
		return true
	}

	// 5. Link. Empty brackets and brackets without an end are plain text.
	if end < 0 || end == i+1 {
		return false
	}

	target := Span{i + 1, end}
	text := target

	if bar := strings.IndexByte(src[i+1:end], '|'); bar >= 0 {
		target.End = i + 1 + bar
		text = Span{target.End + 1, end}
	}

	lx.emit(Token{
		Type:    TokenDirective,
		Name:    NameLink,
		Pos:     i,
		Width:   end + 1 - i,
		Payload: target,
		Arg:     text,
	})

	return true
}

// lexModule processes "[module:name|options]". end is the index of the closing ']'
// or -1 if there is none on the line.
func (lx *lexer) lexModule(end int) bool {
	i := lx.i

	// 1. No closing bracket: the '[' becomes a text with a warning and the rest
	//    is tokenized normally
	if end < 0 {
		lx.emitText(NameModule, Span{i, i + 1}, 1, IssueUnterminatedDirective)
		return true
	}

	nameStart := i + len(modulePrefix)
	nameEnd := end
	optStart := end

	if bar := strings.IndexByte(lx.src[nameStart:end], '|'); bar >= 0 {
		nameEnd = nameStart + bar
		optStart = nameEnd + 1
	}

	// 2. Empty module name: the whole directive becomes a text with a warning
	if nameEnd == nameStart {
		lx.emitText(NameModule, Span{i, end + 1}, end+1-i, IssueEmptyDirectiveName)
		return true
	}

	// 3. Happy case
	lx.emit(Token{
		Type:    TokenDirective,
		Name:    NameModule,
		Pos:     i,
		Width:   end + 1 - i,
		Payload: Span{optStart, end},
		Arg:     Span{nameStart, nameEnd},
	})

	return true
}

// lexIf processes "[if:Flag]". end is the index of the closing ']' or -1.
func (lx *lexer) lexIf(end int) bool {
	i := lx.i

	if end < 0 {
		lx.emitText(NameConditional, Span{i, i + 1}, 1, IssueUnterminatedDirective)
		return true
	}

	nameStart := i + len(ifPrefix)

	if nameStart == end {
		lx.emitText(NameConditional, Span{i, end + 1}, end+1-i, IssueEmptyDirectiveName)
		return true
	}

	lx.emit(Token{
		Type:    TokenOpenTag,
		Name:    NameConditional,
		Pos:     i,
		Width:   end + 1 - i,
		Payload: Span{nameStart, end},
	})

	return true
}

// lexContentRef processes numbered content references like "100S", "42M" or "7G".
// The reference must be a separate word.
func (lx *lexer) lexContentRef() bool {
	src := lx.src
	n := len(src)
	i := lx.i

	if i > 0 && isWordByte(src[i-1]) {
		return false
	}

	j := i
	for j < n && isDigit(src[j]) {
		j++
	}

	if j == n {
		lx.i = j
		return true
	}

	name := contentRefNames[src[j]]
	if name == "" || (j+1 < n && isWordByte(src[j+1])) {
		// skipping the digits, since none of them can start a reference
		lx.i = j
		return true
	}

	lx.emit(Token{
		Type:    TokenDirective,
		Name:    name,
		Pos:     i,
		Width:   j + 1 - i,
		Payload: Span{i, j},
	})

	return true
}

// findBracketEnd returns the index of the first ']' at or after start, or -1 if a line
// break, another '[' or the end of the input comes first.
func findBracketEnd(src string, start int) int {
	for j := start; j < len(src); j++ {
		switch src[j] {
		case ']':
			return j
		case '\n', '[':
			return -1
		}
	}

	return -1
}
