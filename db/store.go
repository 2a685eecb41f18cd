package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store interface {
	GetWikiPage(ctx context.Context, pageName string) (WikiPage, error)
	ListWikiPages(ctx context.Context) ([]WikiPage, error)
	ListSubpages(ctx context.Context, prefix string) ([]string, error)
	CreateWikiRevision(ctx context.Context, arg CreateWikiRevisionParams) (WikiPage, error)
	GetForumPost(ctx context.Context, postID int64) (ForumPost, error)
	CreateForumPost(ctx context.Context, arg CreateForumPostParams) (ForumPost, error)
	Shutdown()
}

// querier is implemented by both the pool and a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type SQLStore struct {
	connPool *pgxpool.Pool
}

func NewStore(connPool *pgxpool.Pool) Store {
	return &SQLStore{
		connPool: connPool,
	}
}

// Shutdown closes the connection pool.
func (s *SQLStore) Shutdown() {
	s.connPool.Close()
}

// execTx runs fn inside a transaction, which is committed if fn returns no error.
func (s *SQLStore) execTx(ctx context.Context, fn func(q querier) error) error {
	tx, err := s.connPool.Begin(ctx)
	if err != nil {
		return err
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("tx err: %w, rb err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit(ctx)
}
