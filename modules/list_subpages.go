package modules

import (
	"context"
	"strings"

	"github.com/TASVideos/wikimark/wikitext"
	"golang.org/x/net/html"
)

const NameListSubpages = "listsubpages"

// ListSubpages lists the pages below the "page" option, the current page by default.
func ListSubpages(ctx context.Context, env Env, opts wikitext.ModuleOptions) (string, error) {
	page := opts.String("page", env.PageName)
	if page == "" {
		return moduleError("listsubpages needs a page"), nil
	}

	names, err := env.Store.ListSubpages(ctx, page)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(`<ul class="subpages">`)

	for _, name := range names {
		sb.WriteString(`<li><a href="`)
		sb.WriteString(html.EscapeString(wikitext.PageHref(name)))
		sb.WriteString(`">`)
		sb.WriteString(html.EscapeString(name))
		sb.WriteString(`</a></li>`)
	}

	sb.WriteString(`</ul>`)

	return sb.String(), nil
}
