package db

import (
	"context"

	"github.com/jackc/pgx/v5"
)

const (
	opGetForumPost    = "get-forum-post"
	opCreateForumPost = "create-forum-post"
)

const forumPostColumns = `id, author_id, subject, markup, enable_bbcode, enable_html, created_at`

type CreateForumPostParams struct {
	AuthorID     int64  `json:"author_id"`
	Subject      string `json:"subject"`
	Markup       string `json:"markup"`
	EnableBBCode bool   `json:"enable_bbcode"`
	EnableHTML   bool   `json:"enable_html"`
}

const getForumPost = `SELECT ` + forumPostColumns + `
FROM forum_posts
WHERE id = $1`

// GetForumPost returns the post. Returns KindNotFound if there is no such post.
func (s *SQLStore) GetForumPost(ctx context.Context, postID int64) (ForumPost, error) {
	post, err := queryForumPost(ctx, s.connPool, getForumPost, postID)
	if err != nil {
		return ForumPost{}, sqlError(opGetForumPost, entForumPost, postID, err)
	}

	return post, nil
}

const createForumPost = `INSERT INTO forum_posts (author_id, subject, markup, enable_bbcode, enable_html)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + forumPostColumns

func (s *SQLStore) CreateForumPost(ctx context.Context, arg CreateForumPostParams) (ForumPost, error) {
	post, err := queryForumPost(ctx, s.connPool, createForumPost,
		arg.AuthorID,
		arg.Subject,
		arg.Markup,
		arg.EnableBBCode,
		arg.EnableHTML,
	)
	if err != nil {
		return ForumPost{}, sqlError(opCreateForumPost, entForumPost, "", err)
	}

	return post, nil
}

func queryForumPost(ctx context.Context, q querier, sql string, args ...any) (ForumPost, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return ForumPost{}, err
	}

	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[ForumPost])
}
