package usecase

import (
	"context"
	"time"

	"github.com/fiscalhub/fiscalhub/internal/metrics"
)

// authUseCaseWithMetrics decorates AuthUseCase with metrics instrumentation.
type authUseCaseWithMetrics struct {
	next    AuthUseCase
	metrics metrics.BusinessMetrics
}

// NewAuthUseCaseWithMetrics wraps an AuthUseCase with metrics recording.
func NewAuthUseCaseWithMetrics(useCase AuthUseCase, m metrics.BusinessMetrics) AuthUseCase {
	return &authUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (u *authUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	u.metrics.RecordOperation(ctx, "auth", operation, status)
	u.metrics.RecordDuration(ctx, "auth", operation, time.Since(start), status)
}

// SignIn records metrics for sign-in attempts.
func (u *authUseCaseWithMetrics) SignIn(ctx context.Context, cpf, password string) (*Session, error) {
	start := time.Now()
	session, err := u.next.SignIn(ctx, cpf, password)
	u.record(ctx, "sign_in", start, err)
	return session, err
}

// SignOut records metrics for sign-out.
func (u *authUseCaseWithMetrics) SignOut(ctx context.Context, token string) error {
	start := time.Now()
	err := u.next.SignOut(ctx, token)
	u.record(ctx, "sign_out", start, err)
	return err
}

// ValidateToken records metrics for token validation.
func (u *authUseCaseWithMetrics) ValidateToken(ctx context.Context, token string) (*Identity, error) {
	start := time.Now()
	identity, err := u.next.ValidateToken(ctx, token)
	u.record(ctx, "token_validate", start, err)
	return identity, err
}

// CheckToken records metrics for token checks on protected routes.
func (u *authUseCaseWithMetrics) CheckToken(ctx context.Context, token string) error {
	start := time.Now()
	err := u.next.CheckToken(ctx, token)
	u.record(ctx, "token_check", start, err)
	return err
}
