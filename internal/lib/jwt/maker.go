// Package jwt implements generation and parsing of the session tokens
// issued on login. Claims carry the username, role and profile UID so the
// HTTP middleware can populate the request context without a storage
// round-trip.
package jwt

import (
	"time"
)

// Maker describes the contract for issuing and verifying session tokens.
type Maker interface {
	// GenerateToken issues a signed token for the given profile.
	GenerateToken(username, role, userUID string) (string, error)
	// ParseToken verifies a token and returns its claims.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl implements Maker with an HMAC secret and a fixed token TTL.
type MakerImpl struct {
	secretKey string
	tokenTTL  time.Duration
}

// NewJWTMaker creates a MakerImpl from the configured secret and TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
