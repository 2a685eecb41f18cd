package wikitext

import (
	"strconv"
	"strings"
)

// processDirective attaches the self-contained element of the Token to the top frame.
func processDirective(state *parserState, tok Token) {
	src := state.src
	bounds := NewSpan(tok.Pos, tok.Width)

	switch tok.Name {
	case NameModule:
		name := ModulePrefix + tok.Arg.Of(src)
		checkModuleOptions(state, tok.Payload)

		var elem *Element
		if state.build {
			elem = &Element{
				Name:    name,
				Options: tok.Payload.Of(src),
				Span:    bounds,
			}
		}
		state.attach(name, elem)

	case NameLink:
		var elem *Element
		if state.build {
			elem = &Element{
				Name:    NameLink,
				Options: tok.Payload.Of(src),
				Span:    bounds,
			}
			if tok.Arg.Width() > 0 {
				elem.Children = []Node{&Text{Content: tok.Arg.Of(src), Span: tok.Arg}}
			}
		}
		state.attach(NameLink, elem)

	default:
		// separators, content references and raw HTML carry their payload as options
		var elem *Element
		if state.build {
			elem = &Element{
				Name:    tok.Name,
				Options: tok.Payload.Of(src),
				Span:    bounds,
			}
		}
		state.attach(tok.Name, elem)
	}
}

// checkModuleOptions reports the option segments without a name, e.g. "=5" or the empty
// one in "a||b". The element is kept as is: options are interpreted by the module itself.
func checkModuleOptions(state *parserState, opts Span) {
	if opts.Width() == 0 {
		return
	}

	raw := opts.Of(state.src)
	pos := opts.Start

	for {
		seg, rest, found := strings.Cut(raw, "|")

		key, _, _ := strings.Cut(seg, "=")
		if strings.TrimSpace(key) == "" {
			state.warn(IssueMalformedModuleOption, pos,
				"module option "+strconv.Quote(seg)+" has no name.")
		}

		if !found {
			return
		}

		pos += len(seg) + 1
		raw = rest
	}
}
