package wikitext

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/unicode/norm"
)

// droppedInText are the elements which have no place in plain text.
var droppedInText = map[string]bool{
	NameConditional: true,
	"img":           true,
	"spoiler":       true,
}

// RenderText renders the tree to plain text for notifications, digests and search.
// Modules, conditionals, images, spoilers and raw HTML are dropped, links keep their text
// and the structural elements become line breaks.
func RenderText(tree *AST) string {
	if tree == nil || tree.Root == nil {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(tree.Source))

	writeText(&sb, tree.Root.Children)

	return sb.String()
}

func writeText(sb *strings.Builder, nodes []Node) {
	for _, node := range nodes {
		switch n := node.(type) {
		case *Text:
			sb.WriteString(n.Content)
		case *Element:
			writeElementText(sb, n)
		}
	}
}

func writeElementText(sb *strings.Builder, e *Element) {
	if e.IsModule() || droppedInText[e.Name] {
		return
	}

	switch e.Name {
	case NameSeparator:
		newLine(sb)

	case NameLink:
		if len(e.Children) == 0 {
			sb.WriteString(e.Options)
			return
		}
		writeText(sb, e.Children)

	case NameSubmission, NamePublication, NameGame:
		sb.WriteString(e.Options)
		sb.WriteString(contentRefSuffix[e.Name])

	case NameHTML:
		if isHTMLBreak(e.Options) {
			sb.WriteByte('\n')
		}

	case "quote":
		newLine(sb)
		if who := strings.Trim(strings.TrimSpace(e.Options), `"'`); who != "" {
			sb.WriteString(who)
			sb.WriteString(" wrote:\n")
		}
		writeText(sb, e.Children)
		newLine(sb)

	case NameListItem:
		newLine(sb)
		sb.WriteString("- ")
		writeText(sb, e.Children)

	case "list":
		writeText(sb, e.Children)
		newLine(sb)

	default:
		writeText(sb, e.Children)
		if isHeader(e.Name) {
			sb.WriteByte('\n')
		}
	}
}

// newLine starts a new line unless the text is empty or already ends with a line break.
func newLine(sb *strings.Builder) {
	s := sb.String()
	if s == "" || s[len(s)-1] == '\n' {
		return
	}
	sb.WriteByte('\n')
}

func isHTMLBreak(raw string) bool {
	z := html.NewTokenizer(strings.NewReader(raw))
	tt := z.Next()
	name, _ := z.TagName()
	return tt != html.EndTagToken && atom.Lookup(name) == atom.Br
}

// Summarize returns the NFC-normalized plain text of the tree with the whitespace collapsed,
// cut at maxRunes runes. A cut summary ends with "…", which is counted in maxRunes.
func Summarize(tree *AST, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}

	text := norm.NFC.String(RenderText(tree))
	text = strings.Join(strings.FieldsFunc(text, unicode.IsSpace), " ")

	if utf8.RuneCountInString(text) <= maxRunes {
		return text
	}

	// cutting one rune earlier to fit the ellipsis
	cut := 0
	for i := 0; i < maxRunes-1; i++ {
		_, width := utf8.DecodeRuneInString(text[cut:])
		cut += width
	}

	return strings.TrimRightFunc(text[:cut], unicode.IsSpace) + "…"
}
