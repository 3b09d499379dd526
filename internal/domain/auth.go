package domain

import "time"

// TokenTypeAccess is the only token type the service issues.
const TokenTypeAccess = "access_token"

// Token carries metadata about an issued access token.
type Token struct {
	Subject   int64
	IssuedAt  time.Time
	ExpiresAt time.Time
}
