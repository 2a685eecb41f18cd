package wikitext

import "strings"

// Node is either an [*Element] or a [*Text].
type Node interface {
	// Bounds is the byte range of the source covered by the Node.
	Bounds() Span

	node()
}

// Element represents a directive, a tag or a module invocation.
// It owns its children exclusively.
type Element struct {
	// Name is the element name, e.g. "h3", "if", "module:listsubpages", "link", "b" or "html".
	Name string

	// Options is the raw option string, stored verbatim.
	// The meaning depends on the Name, see [Token.Payload].
	Options string

	// Children are the nested nodes in document order.
	Children []Node

	// Span defines the byte range in the source covered by this Element, including its
	// opening and closing markers.
	Span Span
}

// Text is a leaf run of literal characters.
type Text struct {
	Content string

	// Span defines the byte range in the source the Text was built from. Escapes make
	// the Span wider than the Content.
	Span Span
}

func (e *Element) Bounds() Span { return e.Span }
func (t *Text) Bounds() Span    { return t.Span }

func (*Element) node() {}
func (*Text) node()    {}

// IsModule reports whether the Element is a module invocation.
func (e *Element) IsModule() bool {
	return strings.HasPrefix(e.Name, ModulePrefix)
}

// ModuleName returns the module name of a module invocation, empty otherwise.
func (e *Element) ModuleName() string {
	name, ok := strings.CutPrefix(e.Name, ModulePrefix)
	if !ok {
		return ""
	}
	return name
}

// Text concatenates the content of all descendant Text nodes.
func (e *Element) Text() string {
	var sb strings.Builder
	collectText(&sb, e)
	return sb.String()
}

func collectText(sb *strings.Builder, e *Element) {
	for _, child := range e.Children {
		switch n := child.(type) {
		case *Text:
			sb.WriteString(n.Content)
		case *Element:
			collectText(sb, n)
		}
	}
}

// AST is the result of parsing. It's built fresh for every call and is never mutated
// after [Parser.Parse] returns.
type AST struct {
	// Source is the original markup.
	Source string

	// Dialect is the grammar the Source was read with.
	Dialect Dialect

	// Root is the synthetic "document" Element.
	Root *Element

	// Warnings are the recorded syntax problems, in the order of their discovery.
	Warnings []Warning

	// MaxDepth is the deepest level of nested elements reached.
	MaxDepth int

	// Modules is the count of module invocations in the tree.
	Modules int

	// Conditionals is the count of conditional elements in the tree.
	Conditionals int
}

// IsStatic reports whether the rendered output depends only on the source: there are no
// modules and no conditionals.
func (a *AST) IsStatic() bool {
	return a.Modules == 0 && a.Conditionals == 0
}

// Walk visits n and its descendants depth-first in document order. If fn returns false
// the children of the current node are skipped.
func Walk(n Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}

	if e, ok := n.(*Element); ok {
		for _, child := range e.Children {
			Walk(child, fn)
		}
	}
}
