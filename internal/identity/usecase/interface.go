// Package usecase defines the interfaces and implementations for user management
// use cases. Use cases orchestrate operations between repositories and services to
// implement business logic for user accounts.
package usecase

import (
	"context"

	"github.com/fiscalhub/fiscalhub/internal/identity/domain"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByCPF(ctx context.Context, cpf string) (*domain.User, error)
	GetByCPFWithPassword(ctx context.Context, cpf string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	SearchByName(ctx context.Context, name string) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, cpf string) error
	Count(ctx context.Context) (int64, error)
	CountAdmins(ctx context.Context) (int64, error)
}

// CreateUserInput carries the fields required to create a user account.
type CreateUserInput struct {
	CPF      string
	Name     string
	Email    string
	Password string
	Role     string
}

// UpdateUserInput carries the fields that may change on an existing user.
// Password is optional; when empty the stored hash is kept.
type UpdateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UserUseCase defines the interface for user management business logic.
type UserUseCase interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, cpf string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	SearchByName(ctx context.Context, name string) ([]*domain.User, error)
	Update(ctx context.Context, cpf string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, cpf string) error
	// HasUsers reports whether at least one user account exists. The first
	// account may be created without authentication.
	HasUsers(ctx context.Context) (bool, error)
}
