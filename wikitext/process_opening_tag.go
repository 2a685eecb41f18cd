package wikitext

import "strconv"

func processOpeningTag(state *parserState, tok Token) {
	// 1. A new list item implicitly closes the previous one
	if tok.Name == NameListItem && state.top().name == NameListItem {
		state.pop(tok.Pos)
	}

	// 2. Check the depth, keep the tag as plain text if it's too deep
	if state.maxDepth > 0 && state.depth() >= state.maxDepth {
		state.warn(IssueNestingTooDeep, tok.Pos,
			"tag "+strconv.Quote(tok.Name)+" exceeds the maximum nesting depth of "+
				strconv.Itoa(state.maxDepth)+" and will be treated as plain text.")

		// list items have no closing tag to skip
		if tok.Name != NameListItem {
			if state.skip == nil {
				state.skip = make(map[string]int)
			}
			state.skip[tok.Name]++
		}

		addRaw(state, tok)
		return
	}

	// 3. Open new frame
	state.push(tok.Name, tok.Payload.Of(state.src), tok)
}
