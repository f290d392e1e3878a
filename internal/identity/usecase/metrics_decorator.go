package usecase

import (
	"context"
	"time"

	"github.com/fiscalhub/fiscalhub/internal/identity/domain"
	"github.com/fiscalhub/fiscalhub/internal/metrics"
)

// userUseCaseWithMetrics decorates UserUseCase with metrics instrumentation.
type userUseCaseWithMetrics struct {
	next    UserUseCase
	metrics metrics.BusinessMetrics
}

// NewUserUseCaseWithMetrics wraps a UserUseCase with metrics recording.
func NewUserUseCaseWithMetrics(useCase UserUseCase, m metrics.BusinessMetrics) UserUseCase {
	return &userUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (u *userUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	u.metrics.RecordOperation(ctx, "identity", operation, status)
	u.metrics.RecordDuration(ctx, "identity", operation, time.Since(start), status)
}

// Create records metrics for user creation.
func (u *userUseCaseWithMetrics) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Create(ctx, input)
	u.record(ctx, "user_create", start, err)
	return user, err
}

// Get records metrics for user retrieval.
func (u *userUseCaseWithMetrics) Get(ctx context.Context, cpf string) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Get(ctx, cpf)
	u.record(ctx, "user_get", start, err)
	return user, err
}

// List records metrics for user listing.
func (u *userUseCaseWithMetrics) List(ctx context.Context) ([]*domain.User, error) {
	start := time.Now()
	users, err := u.next.List(ctx)
	u.record(ctx, "user_list", start, err)
	return users, err
}

// SearchByName records metrics for user search.
func (u *userUseCaseWithMetrics) SearchByName(ctx context.Context, name string) ([]*domain.User, error) {
	start := time.Now()
	users, err := u.next.SearchByName(ctx, name)
	u.record(ctx, "user_search", start, err)
	return users, err
}

// Update records metrics for user updates.
func (u *userUseCaseWithMetrics) Update(ctx context.Context, cpf string, input UpdateUserInput) (*domain.User, error) {
	start := time.Now()
	user, err := u.next.Update(ctx, cpf, input)
	u.record(ctx, "user_update", start, err)
	return user, err
}

// Delete records metrics for user deletion.
func (u *userUseCaseWithMetrics) Delete(ctx context.Context, cpf string) error {
	start := time.Now()
	err := u.next.Delete(ctx, cpf)
	u.record(ctx, "user_delete", start, err)
	return err
}

// HasUsers passes through without metrics. It backs the bootstrap check on
// every user creation request and would only add noise.
func (u *userUseCaseWithMetrics) HasUsers(ctx context.Context) (bool, error) {
	return u.next.HasUsers(ctx)
}
