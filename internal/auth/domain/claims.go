// Package domain defines the authentication domain types and errors.
package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenTypeAccess is the only token type issued by this service. The
// type travels as a custom claim so revoked or foreign tokens can be
// told apart from access tokens during verification.
const TokenTypeAccess = "access"

// Issuer is the iss claim stamped on every issued token.
const Issuer = "fiscalhub"

// Claims is the JWT payload for access tokens. Subject carries the
// normalized 11-digit CPF of the authenticated user and ID carries a
// unique jti used for revocation.
type Claims struct {
	jwt.RegisteredClaims

	// Type discriminates access tokens from any future token kinds.
	Type string `json:"type"`
}
