package wikitext

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// simpleForumTags wrap their children without any argument.
var simpleForumTags = map[string]string{
	"b":       "b",
	"i":       "i",
	"u":       "u",
	"s":       "s",
	"sub":     "sub",
	"sup":     "sup",
	"spoiler": `span class="spoiler"`,
}

var (
	// colorArg is a hex color or a named one.
	colorArg = regexp.MustCompile(`^(#[0-9a-fA-F]{3}|#[0-9a-fA-F]{6}|[a-zA-Z]{1,20})$`)

	// codeLangArg is the language of a code block, used as a class name.
	codeLangArg = regexp.MustCompile(`^[a-zA-Z0-9+#_-]{1,20}$`)
)

const (
	minFontSizePct = 50
	maxFontSizePct = 300
)

// renderForumTag renders the BBCode element:
//
//	b i u s sub sup  -> the tag of the same name
//	spoiler          -> <span class="spoiler">
//	quote[=name]     -> <blockquote> with an optional <cite>name wrote:</cite>
//	code[=lang]      -> <pre><code>, the body keeps its line breaks
//	noparse          -> the escaped body
//	url[=target]     -> <a> with an external target only
//	img              -> <img> with an http(s) source only
//	color=value      -> <span style="color: value">
//	size=percent     -> <span style="font-size: N%">, clamped
//	list[=1|a]       -> <ul> or <ol>
//	*                -> <li>
//
// Elements with an invalid argument render their children only.
func (r *htmlRenderer) renderForumTag(e *Element) error {
	if tag, ok := simpleForumTags[e.Name]; ok {
		name, _, _ := strings.Cut(tag, " ")
		return r.wrap("<"+tag+">", "</"+name+">", e.Children)
	}

	switch e.Name {
	case "quote":
		r.buf.WriteString("<blockquote>")
		if who := strings.Trim(strings.TrimSpace(e.Options), `"'`); who != "" {
			r.buf.WriteString("<cite>")
			r.buf.WriteString(html.EscapeString(who))
			r.buf.WriteString(" wrote:</cite>")
		}
		if err := r.renderChildren(e.Children); err != nil {
			return err
		}
		r.buf.WriteString("</blockquote>")
		return nil

	case "code":
		open := "<pre><code>"
		if lang := strings.TrimSpace(e.Options); codeLangArg.MatchString(lang) {
			open = `<pre><code class="language-` + html.EscapeString(strings.ToLower(lang)) + `">`
		}
		r.rawDepth++
		err := r.wrap(open, "</code></pre>", e.Children)
		r.rawDepth--
		return err

	case "noparse":
		r.rawDepth++
		err := r.renderChildren(e.Children)
		r.rawDepth--
		return err

	case "url":
		return r.renderURL(e)

	case "img":
		src, ok := externalURL(e.Text())
		if !ok || !strings.HasPrefix(strings.ToLower(src), "http") {
			return r.renderChildren(e.Children)
		}
		r.buf.WriteString(`<img src="`)
		r.buf.WriteString(html.EscapeString(src))
		r.buf.WriteString(`" alt="">`)
		return nil

	case "color":
		color := strings.TrimSpace(e.Options)
		if !colorArg.MatchString(color) {
			return r.renderChildren(e.Children)
		}
		return r.wrap(`<span style="color: `+color+`">`, "</span>", e.Children)

	case "size":
		size, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(e.Options, "%")))
		if err != nil {
			return r.renderChildren(e.Children)
		}
		size = min(max(size, minFontSizePct), maxFontSizePct)
		return r.wrap(`<span style="font-size: `+strconv.Itoa(size)+`%">`, "</span>", e.Children)

	case "list":
		open, close := "<ul>", "</ul>"
		switch strings.TrimSpace(e.Options) {
		case "1":
			open, close = `<ol type="1">`, "</ol>"
		case "a":
			open, close = `<ol type="a">`, "</ol>"
		}
		r.listDepth++
		err := r.wrap(open, close, e.Children)
		r.listDepth--
		return err

	case NameListItem:
		// the item content is not a layout whitespace anymore
		depth := r.listDepth
		r.listDepth = 0
		err := r.wrap("<li>", "</li>", trimTrailingBreak(e.Children))
		r.listDepth = depth
		return err
	}

	// unknown element names can only come from a hand-built tree
	return r.renderChildren(e.Children)
}

// renderURL writes "[url]target[/url]" or "[url=target]text[/url]". Unsafe targets render
// the children as plain content.
func (r *htmlRenderer) renderURL(e *Element) error {
	target := e.Options
	if strings.TrimSpace(target) == "" {
		target = e.Text()
	}

	href, ok := externalURL(target)
	if !ok {
		return r.renderChildren(e.Children)
	}

	r.buf.WriteString(`<a href="`)
	r.buf.WriteString(html.EscapeString(href))
	r.buf.WriteString(`" rel="nofollow">`)

	if len(e.Children) == 0 {
		r.buf.WriteString(html.EscapeString(href))
	} else if err := r.renderChildren(e.Children); err != nil {
		return err
	}

	r.buf.WriteString("</a>")
	return nil
}

// trimTrailingBreak returns the nodes without the line break ending the last text, which
// separates the item from the next one in the source. The tree itself is not modified.
func trimTrailingBreak(nodes []Node) []Node {
	if len(nodes) == 0 {
		return nodes
	}

	last, ok := nodes[len(nodes)-1].(*Text)
	if !ok {
		return nodes
	}

	trimmed := strings.TrimRight(last.Content, "\r\n")
	if trimmed == last.Content {
		return nodes
	}

	out := make([]Node, len(nodes))
	copy(out, nodes)
	out[len(out)-1] = &Text{Content: trimmed, Span: last.Span}
	return out
}
