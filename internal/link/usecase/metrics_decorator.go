package usecase

import (
	"context"
	"time"

	"github.com/fiscalhub/fiscalhub/internal/link/domain"
	"github.com/fiscalhub/fiscalhub/internal/metrics"
)

// linkUseCaseWithMetrics decorates LinkUseCase with metrics instrumentation.
type linkUseCaseWithMetrics struct {
	next    LinkUseCase
	metrics metrics.BusinessMetrics
}

// NewLinkUseCaseWithMetrics wraps a LinkUseCase with metrics recording.
func NewLinkUseCaseWithMetrics(useCase LinkUseCase, m metrics.BusinessMetrics) LinkUseCase {
	return &linkUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (u *linkUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	u.metrics.RecordOperation(ctx, "link", operation, status)
	u.metrics.RecordDuration(ctx, "link", operation, time.Since(start), status)
}

// Create records metrics for link creation.
func (u *linkUseCaseWithMetrics) Create(ctx context.Context, input CreateLinkInput) (*domain.Link, error) {
	start := time.Now()
	link, err := u.next.Create(ctx, input)
	u.record(ctx, "link_create", start, err)
	return link, err
}

// CreateBatch records metrics for batch link creation.
func (u *linkUseCaseWithMetrics) CreateBatch(ctx context.Context, inputs []CreateLinkInput) ([]*domain.Link, error) {
	start := time.Now()
	links, err := u.next.CreateBatch(ctx, inputs)
	u.record(ctx, "link_create_batch", start, err)
	return links, err
}

// Get records metrics for link retrieval.
func (u *linkUseCaseWithMetrics) Get(ctx context.Context, cpf, cnpj string) (*domain.Link, error) {
	start := time.Now()
	link, err := u.next.Get(ctx, cpf, cnpj)
	u.record(ctx, "link_get", start, err)
	return link, err
}

// List records metrics for link listing.
func (u *linkUseCaseWithMetrics) List(ctx context.Context) ([]*domain.Link, error) {
	start := time.Now()
	links, err := u.next.List(ctx)
	u.record(ctx, "link_list", start, err)
	return links, err
}

// ListByCPF records metrics for listing links by user.
func (u *linkUseCaseWithMetrics) ListByCPF(ctx context.Context, cpf string) ([]*domain.Link, error) {
	start := time.Now()
	links, err := u.next.ListByCPF(ctx, cpf)
	u.record(ctx, "link_list_by_cpf", start, err)
	return links, err
}

// ListByCNPJ records metrics for listing links by organization.
func (u *linkUseCaseWithMetrics) ListByCNPJ(ctx context.Context, cnpj string) ([]*domain.Link, error) {
	start := time.Now()
	links, err := u.next.ListByCNPJ(ctx, cnpj)
	u.record(ctx, "link_list_by_cnpj", start, err)
	return links, err
}

// Update records metrics for link updates.
func (u *linkUseCaseWithMetrics) Update(ctx context.Context, cpf, cnpj string, input UpdateLinkInput) (*domain.Link, error) {
	start := time.Now()
	link, err := u.next.Update(ctx, cpf, cnpj, input)
	u.record(ctx, "link_update", start, err)
	return link, err
}

// Delete records metrics for link deletion.
func (u *linkUseCaseWithMetrics) Delete(ctx context.Context, cpf, cnpj string) error {
	start := time.Now()
	err := u.next.Delete(ctx, cpf, cnpj)
	u.record(ctx, "link_delete", start, err)
	return err
}
