package util

import (
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// OptionalText wraps pointer string to the pgtype.Text and trims it.
// Nil and blank strings are stored as NULL.
func OptionalText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}

	trim := strings.TrimSpace(*s)
	if trim == "" {
		return pgtype.Text{Valid: false}
	}

	return pgtype.Text{String: trim, Valid: true}
}
