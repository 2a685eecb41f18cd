package wikitext

import "strconv"

func processClosingTag(state *parserState, tok Token) {
	// 1. The closing tag belongs to an opening one kept as plain text
	if state.skip[tok.Name] > 0 {
		state.skip[tok.Name]--
		addRaw(state, tok)
		return
	}

	// 2. Find the matching frame
	idx := findOpenFrame(state, tok.Name)

	if idx < 0 {
		state.warn(IssueMisplacedClosingTag, tok.Pos,
			"closing tag "+strconv.Quote(tok.Raw(state.src))+" has no matching opening tag "+
				strconv.Quote(tok.Name)+" and will be treated as plain text.")

		addRaw(state, tok)
		return
	}

	// 3. Force-close everything opened after the matching frame
	for state.depth() > idx {
		forceClose(state, tok.Pos)
	}

	// 4. Close the frame itself
	state.pop(tok.End())
}

// findOpenFrame returns the index of the innermost open frame with the name, or -1.
// The search never crosses a header: a closing tag inside a header line cannot close
// a tag opened before the header.
func findOpenFrame(state *parserState, name string) int {
	idx := state.innermost(name)
	if idx <= 0 {
		return -1
	}

	for _, h := range headerNames {
		if h != "" && h != name && state.innermost(h) > idx {
			return -1
		}
	}

	return idx
}

// forceClose closes the top frame before its closing tag was found and reports it.
// List items are closed implicitly and are not reported.
func forceClose(state *parserState, end int) {
	f := state.top()

	if f.name != NameListItem {
		state.warn(IssueUnclosedTag, f.open.Pos,
			"tag "+strconv.Quote(f.name)+" is never closed.")
	}

	state.pop(end)
}

func isHeader(name string) bool {
	for _, h := range headerNames {
		if h != "" && h == name {
			return true
		}
	}
	return false
}
