package wikitext

import "strconv"

// closeAll closes every frame still open at the end of the input according to the
// recovery mode.
func closeAll(state *parserState) {
	end := len(state.src)

	for state.depth() > 0 {
		if state.recovery == RecoverForceClose {
			forceClose(state, end)
			continue
		}

		unwrapLiteral(state)
	}

	// the document
	root := state.top()
	state.flushText(root)

	if state.build {
		state.tree.Root = &Element{
			Name:     NameDocument,
			Children: root.children,
			Span:     Span{0, end},
		}
	}
}

// unwrapLiteral drops the top frame, moving its raw opening text and its children into
// the parent. List items are closed as usual, since they're implicitly closed anyway.
func unwrapLiteral(state *parserState) {
	f := state.top()

	if f.name == NameListItem {
		state.pop(len(state.src))
		return
	}

	state.warn(IssueUnclosedTag, f.open.Pos,
		"tag "+strconv.Quote(f.name)+" is never closed and will be treated as plain text.")

	state.flushText(f)
	open := f.open
	children := f.children

	state.drop()

	addRaw(state, open)

	if !state.build {
		return
	}

	parent := state.top()
	for _, child := range children {
		switch n := child.(type) {
		case *Text:
			parent.run.appendString(state.src, n.Content, n.Span)
		case *Element:
			state.flushText(parent)
			parent.children = append(parent.children, n)
		}
	}
}
