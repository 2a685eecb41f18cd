package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Kind classifies an OpError, so the caller can react without knowing the SQL behind it.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindConflict:
		return "conflict"
	case KindInvalid:
		return "invalid"
	}
	return "internal"
}

// Entities the store operates on.
const (
	entWikiPage  = "wiki page"
	entForumPost = "forum post"
)

// PostgreSQL error codes mapped to Kinds.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
)

// OpError is the error returned by every Store operation.
type OpError struct {
	// Op is the name of the failed operation, e.g. "get-wiki-page".
	Op string

	Kind Kind

	// Entity is the kind of the record, e.g. "wiki page".
	Entity string

	// EntityID is the key of the record, the page name or the post id.
	EntityID string

	// Constraint is the violated database constraint, if any.
	Constraint string

	Err error
}

func (e *OpError) Error() string {
	var sb strings.Builder

	sb.WriteString(e.Op)
	sb.WriteString(": ")
	sb.WriteString(e.Entity)

	if e.EntityID != "" {
		sb.WriteString(" ")
		sb.WriteString(e.EntityID)
	}

	sb.WriteString(" ")
	sb.WriteString(e.Kind.String())

	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}

	return sb.String()
}

func (e *OpError) Unwrap() error {
	return e.Err
}

type opErrorOption func(*OpError)

func withEntityID(id any) opErrorOption {
	return func(e *OpError) {
		e.EntityID = fmt.Sprint(id)
	}
}

func withConstraint(name string) opErrorOption {
	return func(e *OpError) {
		e.Constraint = name
	}
}

func newOpError(op string, kind Kind, entity string, err error, opts ...opErrorOption) *OpError {
	e := &OpError{
		Op:     op,
		Kind:   kind,
		Entity: entity,
		Err:    err,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func notFoundError(op, entity string, id any) *OpError {
	return newOpError(
		op,
		KindNotFound,
		entity,
		fmt.Errorf("%s %v not found", entity, id),
		withEntityID(id),
	)
}

// sqlError converts an error of the driver into an OpError.
// Constraint violations become KindConflict or KindInvalid, everything else is KindInternal.
func sqlError(op, entity string, id any, err error) *OpError {
	if errors.Is(err, pgx.ErrNoRows) {
		return notFoundError(op, entity, id)
	}

	opts := []opErrorOption{withEntityID(id)}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return newOpError(op, KindInternal, entity, err, opts...)
	}

	opts = append(opts, withConstraint(pgErr.ConstraintName))

	switch pgErr.Code {
	case pgUniqueViolation:
		return newOpError(op, KindConflict, entity, err, opts...)
	case pgForeignKeyViolation, pgCheckViolation, pgNotNullViolation:
		return newOpError(op, KindInvalid, entity, err, opts...)
	}

	return newOpError(op, KindInternal, entity, err, opts...)
}

// ErrorKind returns the Kind of the OpError in the chain of err, and false if there is none.
func ErrorKind(err error) (Kind, bool) {
	var opErr *OpError
	if errors.As(err, &opErr) {
		return opErr.Kind, true
	}
	return KindInternal, false
}
