package db

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const opCreateWikiRevision = "create-wiki-revision"

type CreateWikiRevisionParams struct {
	PageName        string      `json:"page_name"`
	Markup          string      `json:"markup"`
	RevisionMessage pgtype.Text `json:"revision_message"`
	AuthorID        int64       `json:"author_id"`
}

const lockCurrentRevision = `SELECT revision
FROM wiki_pages
WHERE page_name = $1 AND is_current
FOR UPDATE`

const demoteCurrentRevision = `UPDATE wiki_pages
SET is_current = false
WHERE page_name = $1 AND is_current`

const insertWikiRevision = `INSERT INTO wiki_pages (page_name, revision, markup, revision_message, author_id)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + wikiPageColumns

// CreateWikiRevision stores a new current revision of the page. The first revision
// creates the page. Returns KindConflict if another revision was created concurrently,
// or KindInternal on database errors.
func (s *SQLStore) CreateWikiRevision(ctx context.Context, arg CreateWikiRevisionParams) (WikiPage, error) {
	var result WikiPage

	err := s.execTx(ctx, func(q querier) error {
		// 1. Lock the current revision, a new page has none
		var current int32
		err := q.QueryRow(ctx, lockCurrentRevision, arg.PageName).Scan(&current)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		// 2. Demote it
		if current > 0 {
			if _, err = q.Exec(ctx, demoteCurrentRevision, arg.PageName); err != nil {
				return err
			}
		}

		// 3. Insert the next one. Two writers of a new page race on the unique
		//    (page_name, revision) pair, the loser gets a unique violation.
		page, err := queryWikiPage(ctx, q, insertWikiRevision,
			arg.PageName,
			current+1,
			arg.Markup,
			arg.RevisionMessage,
			arg.AuthorID,
		)
		if err != nil {
			return err
		}

		result = page
		return nil
	})

	if err != nil {
		return WikiPage{}, sqlError(opCreateWikiRevision, entWikiPage, arg.PageName, err)
	}

	return result, nil
}
