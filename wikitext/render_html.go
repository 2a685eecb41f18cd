package wikitext

import (
	"bytes"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// paragraphBreak is a blank line, possibly containing spaces.
var paragraphBreak = regexp.MustCompile(`\n[ \t\r]*\n\s*`)

// htmlRenderer holds the state of a single RenderHTML call.
type htmlRenderer struct {
	buf bytes.Buffer

	dialect Dialect
	modules ModuleResolver
	cond    Condition

	// inPara is true while a wiki paragraph is open.
	inPara bool

	// rawDepth is greater than zero inside elements whose text keeps its line breaks.
	rawDepth int

	// listDepth is greater than zero inside forum lists.
	listDepth int

	// openHTML is the stack of sanitized raw HTML tags which are still open.
	openHTML []string

	// htmlFloor is the size of openHTML when the current element started. Raw tags below
	// it belong to an outer element and can't be closed from inside.
	htmlFloor int
}

// RenderHTML renders the tree to HTML. Text is always escaped. Module invocations are
// delegated to modules, conditional content is kept only if cond is true for its flag.
// Errors of the ModuleResolver are returned unmodified.
func RenderHTML(tree *AST, modules ModuleResolver, cond Condition) (string, error) {
	if tree == nil || tree.Root == nil {
		return "", nil
	}

	r := htmlRenderer{
		dialect: tree.Dialect,
		modules: modules,
		cond:    cond,
	}
	r.buf.Grow(len(tree.Source) + len(tree.Source)/4)

	var err error
	if r.dialect.IsWiki() {
		err = r.renderBlocks(tree.Root.Children)
		r.closePara()
	} else {
		err = r.renderInline(tree.Root.Children)
	}
	if err != nil {
		return "", err
	}

	r.closeOpenHTML()

	return r.buf.String(), nil
}

// renderBlocks renders the top level of a wiki page, grouping the inline content into
// paragraphs.
func (r *htmlRenderer) renderBlocks(nodes []Node) error {
	for _, node := range nodes {
		switch n := node.(type) {
		case *Text:
			r.blockText(n.Content)

		case *Element:
			switch {
			case n.Name == NameConditional:
				// conditionals are transparent on the block level
				if !r.cond.eval(n.Options) {
					continue
				}
				if err := r.renderBlocks(n.Children); err != nil {
					return err
				}
				continue

			case isBlock(n):
				r.closePara()

			default:
				r.openPara()
			}

			if err := r.renderElement(n); err != nil {
				return err
			}
		}
	}

	return nil
}

// blockText writes the top level text, splitting it into paragraphs at blank lines.
func (r *htmlRenderer) blockText(s string) {
	pieces := paragraphBreak.Split(s, -1)

	for i, piece := range pieces {
		if i > 0 {
			r.closePara()
		}

		if !r.inPara {
			// whitespace alone never opens a paragraph
			if strings.TrimSpace(piece) == "" {
				continue
			}
			piece = strings.TrimLeft(piece, "\r\n")
		}

		r.openPara()
		r.buf.WriteString(html.EscapeString(piece))
	}
}

func (r *htmlRenderer) openPara() {
	if r.inPara {
		return
	}
	r.buf.WriteString("<p>")
	r.inPara = true
}

// closePara closes the open paragraph, dropping its trailing whitespace.
func (r *htmlRenderer) closePara() {
	if !r.inPara {
		return
	}

	b := r.buf.Bytes()
	n := len(b)
	for n > 0 && (b[n-1] == '\n' || b[n-1] == '\r' || b[n-1] == ' ' || b[n-1] == '\t') {
		n--
	}
	r.buf.Truncate(n)

	r.buf.WriteString("</p>")
	r.inPara = false
}

// isBlock reports whether the wiki element cannot be a part of a paragraph.
func isBlock(e *Element) bool {
	return isHeader(e.Name) || e.Name == NameSeparator || e.IsModule()
}

func (r *htmlRenderer) renderInline(nodes []Node) error {
	for _, node := range nodes {
		switch n := node.(type) {
		case *Text:
			r.inlineText(n.Content)

		case *Element:
			if err := r.renderElement(n); err != nil {
				return err
			}
		}
	}

	return nil
}

// inlineText writes escaped text. Forum line breaks become "<br>" outside of code blocks.
func (r *htmlRenderer) inlineText(s string) {
	if r.dialect.IsWiki() || r.rawDepth > 0 {
		r.buf.WriteString(html.EscapeString(s))
		return
	}

	// the whitespace between list items is layout only
	if r.listDepth > 0 && strings.TrimSpace(s) == "" {
		return
	}

	s = strings.ReplaceAll(s, "\r\n", "\n")

	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			r.buf.WriteString("<br>")
		}
		r.buf.WriteString(html.EscapeString(line))
	}
}

// renderElement renders the element and its children.
func (r *htmlRenderer) renderElement(e *Element) error {
	if e.IsModule() {
		return r.renderModule(e)
	}

	switch e.Name {
	case NameConditional:
		if !r.cond.eval(e.Options) {
			return nil
		}
		return r.renderInline(e.Children)

	case NameSeparator:
		r.buf.WriteString("<hr>")
		return nil

	case NameLink:
		return r.renderLink(e)

	case NameSubmission, NamePublication, NameGame:
		ref := e.Options + contentRefSuffix[e.Name]
		r.buf.WriteString(`<a href="/`)
		r.buf.WriteString(html.EscapeString(ref))
		r.buf.WriteString(`">`)
		r.buf.WriteString(html.EscapeString(ref))
		r.buf.WriteString("</a>")
		return nil

	case NameHTML:
		r.renderRawHTML(e.Options)
		return nil
	}

	if isHeader(e.Name) {
		return r.wrap("<"+e.Name+">", "</"+e.Name+">", e.Children)
	}

	return r.renderForumTag(e)
}

func (r *htmlRenderer) renderModule(e *Element) error {
	if r.modules == nil {
		return ErrNoModuleResolver
	}

	out, err := r.modules.Render(e.ModuleName(), e.Options)
	if err != nil {
		return err
	}

	r.buf.WriteString(out)
	return nil
}

// wrap writes the children between the open and the close markup.
func (r *htmlRenderer) wrap(open, close string, children []Node) error {
	r.buf.WriteString(open)
	if err := r.renderChildren(children); err != nil {
		return err
	}
	r.buf.WriteString(close)
	return nil
}

// renderChildren renders the content of an element. Raw HTML tags opened inside are
// closed before the element ends.
func (r *htmlRenderer) renderChildren(children []Node) error {
	floor := r.htmlFloor
	r.htmlFloor = len(r.openHTML)

	err := r.renderInline(children)

	r.closeOpenHTML()
	r.htmlFloor = floor
	return err
}
