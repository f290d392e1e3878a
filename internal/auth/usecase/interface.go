// Package usecase implements the authentication business logic:
// sign-in with lockout, sign-out with token revocation, and token
// validation with access policy enforcement.
package usecase

import (
	"context"

	"github.com/fiscalhub/fiscalhub/internal/auth/domain"
	identitydomain "github.com/fiscalhub/fiscalhub/internal/identity/domain"
	linkdomain "github.com/fiscalhub/fiscalhub/internal/link/domain"
)

// UserRepository is the slice of the identity repository the
// authentication flows need.
type UserRepository interface {
	GetByCPF(ctx context.Context, cpf string) (*identitydomain.User, error)
	GetByCPFWithPassword(ctx context.Context, cpf string) (*identitydomain.User, error)
}

// LinkRepository is the slice of the link repository the authentication
// flows need.
type LinkRepository interface {
	ListByCPF(ctx context.Context, cpf string) ([]*linkdomain.Link, error)
}

// Session is the result of a successful sign-in.
type Session struct {
	// AccessToken is the signed compact JWT.
	AccessToken string
	// TokenType is always "Bearer".
	TokenType string
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64
	// User is the authenticated user with the password hash cleared.
	User *identitydomain.User
	// Links are the user's organization links, active or not.
	Links []*linkdomain.Link
}

// Identity is the result of validating an access token.
type Identity struct {
	Claims *domain.Claims
	User   *identitydomain.User
	Links  []*linkdomain.Link
}

// AuthUseCase defines the interface for authentication business logic.
type AuthUseCase interface {
	// SignIn authenticates a CPF and password pair and issues an access
	// token. Repeated failures lock the CPF out for a configured window.
	SignIn(ctx context.Context, cpf, password string) (*Session, error)

	// SignOut revokes the given access token. Revoking an already
	// revoked or expired token succeeds.
	SignOut(ctx context.Context, token string) error

	// ValidateToken verifies a token and re-checks the access policy
	// against the current user record and links.
	ValidateToken(ctx context.Context, token string) (*Identity, error)

	// CheckToken reports whether a token is currently acceptable.
	// It satisfies the token validator contract of protected handlers.
	CheckToken(ctx context.Context, token string) error
}
