// Package mocks provides mock implementations for auth use case testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	identitydomain "github.com/fiscalhub/fiscalhub/internal/identity/domain"
)

// MockUserRepository is a mock implementation of usecase.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByCPF(ctx context.Context, cpf string) (*identitydomain.User, error) {
	args := m.Called(ctx, cpf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identitydomain.User), args.Error(1)
}

func (m *MockUserRepository) GetByCPFWithPassword(ctx context.Context, cpf string) (*identitydomain.User, error) {
	args := m.Called(ctx, cpf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identitydomain.User), args.Error(1)
}
