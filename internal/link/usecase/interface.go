// Package usecase defines the interfaces and implementations for
// user-organization link management use cases.
package usecase

import (
	"context"

	"github.com/fiscalhub/fiscalhub/internal/link/domain"
)

// LinkRepository defines the interface for link persistence operations.
type LinkRepository interface {
	Create(ctx context.Context, link *domain.Link) error
	Get(ctx context.Context, cpf, cnpj string) (*domain.Link, error)
	List(ctx context.Context) ([]*domain.Link, error)
	ListByCPF(ctx context.Context, cpf string) ([]*domain.Link, error)
	ListByCNPJ(ctx context.Context, cnpj string) ([]*domain.Link, error)
	Update(ctx context.Context, link *domain.Link) error
	Delete(ctx context.Context, cpf, cnpj string) error
}

// CreateLinkInput carries the fields required to create a link.
type CreateLinkInput struct {
	CPF            string
	CNPJ           string
	PermissionCode string
	Status         string
}

// UpdateLinkInput carries the fields that may change on a link.
type UpdateLinkInput struct {
	PermissionCode string
	Status         string
}

// LinkUseCase defines the interface for link management business logic.
type LinkUseCase interface {
	Create(ctx context.Context, input CreateLinkInput) (*domain.Link, error)
	// CreateBatch creates several links atomically: either every link is
	// created or none are.
	CreateBatch(ctx context.Context, inputs []CreateLinkInput) ([]*domain.Link, error)
	Get(ctx context.Context, cpf, cnpj string) (*domain.Link, error)
	List(ctx context.Context) ([]*domain.Link, error)
	ListByCPF(ctx context.Context, cpf string) ([]*domain.Link, error)
	ListByCNPJ(ctx context.Context, cnpj string) ([]*domain.Link, error)
	Update(ctx context.Context, cpf, cnpj string, input UpdateLinkInput) (*domain.Link, error)
	Delete(ctx context.Context, cpf, cnpj string) error
}
