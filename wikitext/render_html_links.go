package wikitext

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// externalSchemes are the only schemes which can reach an href as is.
var externalSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"ftp":    true,
	"mailto": true,
}

// externalURL returns the trimmed target and true if it's an absolute URL with one of the
// allowed schemes.
func externalURL(target string) (string, bool) {
	target = strings.TrimSpace(target)

	u, err := url.Parse(target)
	if err != nil {
		return "", false
	}

	scheme := strings.ToLower(u.Scheme)
	if !externalSchemes[scheme] {
		return "", false
	}

	// "http:foo" has a scheme but nowhere to go
	if scheme != "mailto" && u.Host == "" {
		return "", false
	}

	return target, true
}

// internalHref turns a wiki page name into a site path, "Game Resources/NES" becomes
// "/Game%20Resources/NES". Every segment is escaped, so the result is always a path.
func internalHref(target string) string {
	target = strings.TrimSpace(target)

	page, fragment, hasFragment := strings.Cut(target, "#")

	var sb strings.Builder
	for _, seg := range strings.Split(strings.Trim(page, "/"), "/") {
		if seg == "" {
			continue
		}
		sb.WriteByte('/')
		sb.WriteString(url.PathEscape(seg))
	}

	if sb.Len() == 0 && !hasFragment {
		sb.WriteByte('/')
	}

	if hasFragment {
		sb.WriteByte('#')
		sb.WriteString(url.PathEscape(fragment))
	}

	return sb.String()
}

// renderLink writes a wiki link. Links without text show their target.
func (r *htmlRenderer) renderLink(e *Element) error {
	href, external := externalURL(e.Options)
	if !external {
		href = internalHref(e.Options)
	}

	r.buf.WriteString(`<a href="`)
	r.buf.WriteString(html.EscapeString(href))
	if external {
		r.buf.WriteString(`" rel="nofollow">`)
	} else {
		r.buf.WriteString(`">`)
	}

	if len(e.Children) == 0 {
		r.buf.WriteString(html.EscapeString(e.Options))
	} else if err := r.renderInline(e.Children); err != nil {
		return err
	}

	r.buf.WriteString("</a>")
	return nil
}

// PageHref returns the site path of the wiki page, the same one wiki links point to.
func PageHref(name string) string {
	return internalHref(name)
}
