package usecase

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/fiscalhub/fiscalhub/internal/auth/domain"
	"github.com/fiscalhub/fiscalhub/internal/auth/service"
	identitydomain "github.com/fiscalhub/fiscalhub/internal/identity/domain"
	linkdomain "github.com/fiscalhub/fiscalhub/internal/link/domain"
	"github.com/fiscalhub/fiscalhub/internal/validation"
)

// authUseCase implements AuthUseCase.
type authUseCase struct {
	tokens   service.TokenService
	limiter  *service.LoginAttemptLimiter
	userRepo UserRepository
	linkRepo LinkRepository
	logger   *slog.Logger
}

// NewAuthUseCase creates a new AuthUseCase.
func NewAuthUseCase(
	tokens service.TokenService,
	limiter *service.LoginAttemptLimiter,
	userRepo UserRepository,
	linkRepo LinkRepository,
	logger *slog.Logger,
) AuthUseCase {
	return &authUseCase{
		tokens:   tokens,
		limiter:  limiter,
		userRepo: userRepo,
		linkRepo: linkRepo,
		logger:   logger,
	}
}

func (u *authUseCase) SignIn(ctx context.Context, cpf, password string) (*Session, error) {
	// Sign-in only checks the shape of the CPF, not the check digits.
	// The stored value is authoritative; a malformed input is rejected
	// as invalid input before it can touch the limiter or the database.
	normalized := validation.NormalizeDocument(cpf)
	if len(normalized) != 11 {
		return nil, domain.ErrMalformedCPF
	}
	if password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if err := u.limiter.Check(normalized); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByCPFWithPassword(ctx, normalized)
	if err != nil {
		if errors.Is(err, identitydomain.ErrUserNotFound) {
			u.limiter.RecordFailure(normalized)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	links, err := u.linkRepo.ListByCPF(ctx, normalized)
	if err != nil {
		return nil, err
	}

	if err := authorize(user, links); err != nil {
		// A policy deny counts toward the lockout like a bad password,
		// so repeated sign-ins against a link-less account still lock.
		u.limiter.RecordFailure(normalized)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		u.limiter.RecordFailure(normalized)
		return nil, domain.ErrInvalidCredentials
	}

	u.limiter.Clear(normalized)

	token, claims, err := u.tokens.Issue(normalized)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	u.logger.Info("user signed in", "cpf", redactCPF(normalized))

	return &Session{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time).Seconds()),
		User:        user,
		Links:       links,
	}, nil
}

func (u *authUseCase) SignOut(ctx context.Context, token string) error {
	claims, err := u.tokens.Revoke(token)
	if err != nil {
		return err
	}

	u.logger.Info("user signed out", "cpf", redactCPF(claims.Subject))
	return nil
}

func (u *authUseCase) ValidateToken(ctx context.Context, token string) (*Identity, error) {
	claims, err := u.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	// The user record and links are re-read on every validation so a
	// deleted user or a deactivated link cuts access before the token
	// expires.
	user, err := u.userRepo.GetByCPF(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, identitydomain.ErrUserNotFound) {
			return nil, domain.ErrTokenInvalid
		}
		return nil, err
	}

	links, err := u.linkRepo.ListByCPF(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}

	if err := authorize(user, links); err != nil {
		return nil, err
	}

	return &Identity{Claims: claims, User: user, Links: links}, nil
}

func (u *authUseCase) CheckToken(ctx context.Context, token string) error {
	_, err := u.ValidateToken(ctx, token)
	return err
}

// authorize enforces the access policy: administrators are always
// allowed, everyone else needs at least one active organization link.
func authorize(user *identitydomain.User, links []*linkdomain.Link) error {
	if user.IsAdmin() {
		return nil
	}
	for _, link := range links {
		if link.IsActive() {
			return nil
		}
	}
	return domain.ErrAccessDenied
}

// redactCPF keeps the first three digits of a CPF for log correlation.
func redactCPF(cpf string) string {
	if len(cpf) <= 3 {
		return cpf
	}
	return cpf[:3] + "***"
}
