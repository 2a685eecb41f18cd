package db

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
)

const (
	opGetWikiPage   = "get-wiki-page"
	opListWikiPages = "list-wiki-pages"
	opListSubpages  = "list-subpages"
)

const wikiPageColumns = `id, page_name, revision, markup, revision_message, author_id, is_current, created_at`

const getWikiPage = `SELECT ` + wikiPageColumns + `
FROM wiki_pages
WHERE page_name = $1 AND is_current`

// GetWikiPage returns the current revision of the page.
// Returns KindNotFound if the page has no revisions.
func (s *SQLStore) GetWikiPage(ctx context.Context, pageName string) (WikiPage, error) {
	page, err := queryWikiPage(ctx, s.connPool, getWikiPage, pageName)
	if err != nil {
		return WikiPage{}, sqlError(opGetWikiPage, entWikiPage, pageName, err)
	}

	return page, nil
}

const listWikiPages = `SELECT ` + wikiPageColumns + `
FROM wiki_pages
WHERE is_current
ORDER BY page_name`

// ListWikiPages returns the current revision of every page, ordered by name.
func (s *SQLStore) ListWikiPages(ctx context.Context) ([]WikiPage, error) {
	rows, err := s.connPool.Query(ctx, listWikiPages)
	if err != nil {
		return nil, sqlError(opListWikiPages, entWikiPage, "", err)
	}

	pages, err := pgx.CollectRows(rows, pgx.RowToStructByName[WikiPage])
	if err != nil {
		return nil, sqlError(opListWikiPages, entWikiPage, "", err)
	}

	return pages, nil
}

const listSubpages = `SELECT page_name
FROM wiki_pages
WHERE is_current AND page_name LIKE $1 ESCAPE '\'
ORDER BY page_name`

// ListSubpages returns the names of the pages below prefix, e.g. "Games/NES" and
// "Games/SNES/Tools" for "Games". An empty result is not an error.
func (s *SQLStore) ListSubpages(ctx context.Context, prefix string) ([]string, error) {
	prefix = strings.Trim(prefix, "/")

	rows, err := s.connPool.Query(ctx, listSubpages, escapeLike(prefix)+"/%")
	if err != nil {
		return nil, sqlError(opListSubpages, entWikiPage, prefix, err)
	}

	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, sqlError(opListSubpages, entWikiPage, prefix, err)
	}

	return names, nil
}

func queryWikiPage(ctx context.Context, q querier, sql string, args ...any) (WikiPage, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return WikiPage{}, err
	}

	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[WikiPage])
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes the LIKE wildcards of s literal.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
