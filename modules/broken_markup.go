package modules

import (
	"context"
	"runtime"
	"strconv"
	"strings"

	"github.com/TASVideos/wikimark/db"
	"github.com/TASVideos/wikimark/wikitext"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"
)

const NameBrokenMarkup = "brokenmarkup"

// defaultBrokenLimit is the count of pages the module lists by default.
const defaultBrokenLimit = 50

// BrokenPage is the first syntax problem of the current revision of a wiki page.
type BrokenPage struct {
	Page     string `json:"page"`
	Revision int32  `json:"revision"`
	wikitext.SerializableWarning
}

// FindBrokenPages checks the current revision of every wiki page and returns the pages
// with syntax problems, ordered by name.
func FindBrokenPages(ctx context.Context, store db.Store, parser *wikitext.Parser, radius int) ([]BrokenPage, error) {
	pages, err := store.ListWikiPages(ctx)
	if err != nil {
		return nil, err
	}

	found := make([]*BrokenPage, len(pages))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, page := range pages {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			w, ok := parser.ParseForErrors(page.Markup)
			if !ok {
				return nil
			}

			found[i] = &BrokenPage{
				Page:                page.PageName,
				Revision:            page.Revision,
				SerializableWarning: w.Serialize(page.Markup, radius),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// the slots keep the order of the store
	broken := make([]BrokenPage, 0, len(found))
	for _, b := range found {
		if b != nil {
			broken = append(broken, *b)
		}
	}

	return broken, nil
}

// BrokenMarkup reports the wiki pages with syntax problems as a table,
// at most "limit" rows. Only page editors can see the report.
func BrokenMarkup(ctx context.Context, env Env, opts wikitext.ModuleOptions) (string, error) {
	if env.Viewer == nil || !env.Viewer.CanEditPages {
		return moduleError("The markup report is only available to page editors."), nil
	}

	limit := opts.Int("limit", defaultBrokenLimit)
	if limit <= 0 {
		limit = defaultBrokenLimit
	}

	broken, err := FindBrokenPages(ctx, env.Store, env.Parser, env.ExcerptRadius)
	if err != nil {
		return "", err
	}

	if len(broken) == 0 {
		return `<p class="broken-markup">No pages with markup problems.</p>`, nil
	}

	var sb strings.Builder
	sb.WriteString(`<table class="broken-markup"><tr><th>Page</th><th>Offset</th><th>Problem</th><th>Context</th></tr>`)

	for _, b := range broken[:min(limit, len(broken))] {
		sb.WriteString(`<tr><td><a href="`)
		sb.WriteString(html.EscapeString(wikitext.PageHref(b.Page)))
		sb.WriteString(`">`)
		sb.WriteString(html.EscapeString(b.Page))
		sb.WriteString(`</a></td><td>`)
		sb.WriteString(strconv.Itoa(b.ByteIdx))
		sb.WriteString(`</td><td>`)
		sb.WriteString(html.EscapeString(b.Issue))
		sb.WriteString(`</td><td><code>`)
		sb.WriteString(html.EscapeString(b.Before))
		sb.WriteString(`<mark>`)
		sb.WriteString(html.EscapeString(b.After))
		sb.WriteString(`</mark></code></td></tr>`)
	}

	sb.WriteString(`</table>`)

	return sb.String(), nil
}
