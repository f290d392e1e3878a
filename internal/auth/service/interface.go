// Package service provides technical services for authentication:
// access token issuance and verification, token revocation tracking,
// and sign-in attempt limiting.
package service

import (
	"time"

	"github.com/fiscalhub/fiscalhub/internal/auth/domain"
)

// TokenService defines operations for access token issuance, verification
// and revocation. Tokens are HMAC-signed JWTs carrying the user's CPF as
// the subject and a unique jti for revocation.
type TokenService interface {
	// Issue creates a signed access token for the given CPF.
	// Returns the compact token string and the claims embedded in it.
	Issue(cpf string) (token string, claims *domain.Claims, err error)

	// Verify checks a token and returns its claims. Revocation is
	// checked first, then the signature and registered claims, then the
	// maximum token age measured from the issued-at claim.
	Verify(token string) (*domain.Claims, error)

	// Revoke marks a token as signed out. The token must be well formed
	// and carry a valid signature; an already expired or already revoked
	// token revokes without error.
	Revoke(token string) (*domain.Claims, error)
}

// RevocationStore tracks the jti claims of revoked tokens. The expiry is
// recorded for a future TTL-backed implementation; the in-memory store
// keeps entries until restart.
type RevocationStore interface {
	// Add records a jti as revoked. expiresAt is the token's own expiry.
	Add(jti string, expiresAt time.Time)

	// Contains reports whether a jti has been revoked.
	Contains(jti string) bool

	// Size returns the number of tracked entries.
	Size() int
}
