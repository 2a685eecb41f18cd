package token

import "time"

// Maker creates and verifies viewer tokens.
type Maker interface {
	CreateToken(userID int64, canEditPages bool, duration time.Duration) (string, *Payload, error)
	VerifyToken(token string) (*Payload, error)
}
