package wikitext

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// allowedHTML is the allow-list of raw HTML tags in forum posts.
var allowedHTML = map[atom.Atom]bool{
	atom.A:          true,
	atom.B:          true,
	atom.Blockquote: true,
	atom.Br:         true,
	atom.Code:       true,
	atom.Del:        true,
	atom.Div:        true,
	atom.Em:         true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.Hr:         true,
	atom.I:          true,
	atom.Li:         true,
	atom.Ol:         true,
	atom.P:          true,
	atom.Pre:        true,
	atom.S:          true,
	atom.Small:      true,
	atom.Span:       true,
	atom.Strong:     true,
	atom.Sub:        true,
	atom.Sup:        true,
	atom.U:          true,
	atom.Ul:         true,
}

// voidHTML are the allowed tags without a closing counterpart.
var voidHTML = map[atom.Atom]bool{
	atom.Br: true,
	atom.Hr: true,
}

// renderRawHTML writes the sanitized form of a single raw tag. Disallowed tags are dropped,
// only the "title" and "class" attributes survive, plus "href" on links with a safe target.
// Closing tags close the matching open one, tags left open are closed at the end of the
// enclosing element.
func (r *htmlRenderer) renderRawHTML(raw string) {
	z := html.NewTokenizer(strings.NewReader(raw))
	tt := z.Next()
	tok := z.Token()

	if !allowedHTML[tok.DataAtom] {
		return
	}

	switch tt {
	case html.StartTagToken, html.SelfClosingTagToken:
		r.buf.WriteByte('<')
		r.buf.WriteString(tok.Data)
		writeAllowedAttrs(r, tok)
		r.buf.WriteByte('>')

		if tt == html.StartTagToken && !voidHTML[tok.DataAtom] {
			r.openHTML = append(r.openHTML, tok.Data)
		}

	case html.EndTagToken:
		idx := -1
		for i := len(r.openHTML) - 1; i >= r.htmlFloor; i-- {
			if r.openHTML[i] == tok.Data {
				idx = i
				break
			}
		}

		// a closing tag without its opening one in the current element is dropped
		if idx < 0 {
			return
		}

		for i := len(r.openHTML) - 1; i >= idx; i-- {
			r.buf.WriteString("</" + r.openHTML[i] + ">")
		}
		r.openHTML = r.openHTML[:idx]
	}
}

func writeAllowedAttrs(r *htmlRenderer, tok html.Token) {
	for _, attr := range tok.Attr {
		var value string

		switch attr.Key {
		case "title", "class":
			value = attr.Val

		case "href":
			if tok.DataAtom != atom.A {
				continue
			}
			href, ok := externalURL(attr.Val)
			if !ok {
				continue
			}
			value = href

		default:
			continue
		}

		r.buf.WriteByte(' ')
		r.buf.WriteString(attr.Key)
		r.buf.WriteString(`="`)
		r.buf.WriteString(html.EscapeString(value))
		r.buf.WriteByte('"')
	}
}

// closeOpenHTML closes the raw HTML tags opened inside the current element, or left open
// by the whole post at the top level.
func (r *htmlRenderer) closeOpenHTML() {
	for i := len(r.openHTML) - 1; i >= r.htmlFloor; i-- {
		r.buf.WriteString("</" + r.openHTML[i] + ">")
	}
	r.openHTML = r.openHTML[:r.htmlFloor]
}
