package db

import (
	"time"

	"github.com/TASVideos/wikimark/wikitext"
	"github.com/jackc/pgx/v5/pgtype"
)

// WikiPage is a single revision of a wiki page. Only the markup is stored,
// the rendered output is always derived from it.
type WikiPage struct {
	ID              int64       `db:"id" json:"id"`
	PageName        string      `db:"page_name" json:"page_name"`
	Revision        int32       `db:"revision" json:"revision"`
	Markup          string      `db:"markup" json:"markup"`
	RevisionMessage pgtype.Text `db:"revision_message" json:"revision_message"`
	AuthorID        int64       `db:"author_id" json:"author_id"`
	IsCurrent       bool        `db:"is_current" json:"is_current"`
	CreatedAt       time.Time   `db:"created_at" json:"created_at"`
}

// ForumPost is a forum post together with the dialect flags chosen by its author.
type ForumPost struct {
	ID           int64     `db:"id" json:"id"`
	AuthorID     int64     `db:"author_id" json:"author_id"`
	Subject      string    `db:"subject" json:"subject"`
	Markup       string    `db:"markup" json:"markup"`
	EnableBBCode bool      `db:"enable_bbcode" json:"enable_bbcode"`
	EnableHTML   bool      `db:"enable_html" json:"enable_html"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Dialect returns the markup dialect of the post.
func (p ForumPost) Dialect() wikitext.Dialect {
	return wikitext.Forum(p.EnableBBCode, p.EnableHTML)
}
