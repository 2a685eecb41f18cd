package wikitext

import "strconv"

// processText appends the text Token to the top frame. Text Tokens carrying an Issue come
// from malformed directives and are reported.
func processText(state *parserState, tok Token) {
	switch tok.Issue {
	case IssueNone:

	case IssueUnterminatedDirective:
		state.warn(tok.Issue, tok.Pos,
			"directive "+strconv.Quote(tok.Name)+" is missing its closing ']' on the same line.")

	case IssueEmptyDirectiveName:
		state.warn(tok.Issue, tok.Pos,
			"directive "+strconv.Quote(tok.Name)+" has an empty name and will be treated as plain text.")

	default:
		state.warn(tok.Issue, tok.Pos, tok.Issue.String())
	}

	state.addText(tok.Payload, NewSpan(tok.Pos, tok.Width))
}

// addRaw appends the raw source of the Token as plain text.
func addRaw(state *parserState, tok Token) {
	span := NewSpan(tok.Pos, tok.Width)
	state.addText(span, span)
}
