package token

import "time"

// Identity is the caller identity carried by a validated access token.
type Identity struct {
	Username string
	UserID   uint
}

type TokenService interface {
	GenerateAccessToken(username string, userID uint, ttl time.Duration) (string, error)
	ValidateAccessToken(raw string) (Identity, error)
}
