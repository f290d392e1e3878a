// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fiscalhub/fiscalhub/internal/identity/domain"
	"github.com/fiscalhub/fiscalhub/internal/identity/usecase"
)

// MockUserUseCase is a mock implementation of UserUseCase for testing.
type MockUserUseCase struct {
	mock.Mock
}

// Create mocks the Create method of UserUseCase.
func (m *MockUserUseCase) Create(ctx context.Context, input usecase.CreateUserInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// Get mocks the Get method of UserUseCase.
func (m *MockUserUseCase) Get(ctx context.Context, cpf string) (*domain.User, error) {
	args := m.Called(ctx, cpf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// List mocks the List method of UserUseCase.
func (m *MockUserUseCase) List(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

// SearchByName mocks the SearchByName method of UserUseCase.
func (m *MockUserUseCase) SearchByName(ctx context.Context, name string) ([]*domain.User, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

// Update mocks the Update method of UserUseCase.
func (m *MockUserUseCase) Update(ctx context.Context, cpf string, input usecase.UpdateUserInput) (*domain.User, error) {
	args := m.Called(ctx, cpf, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// Delete mocks the Delete method of UserUseCase.
func (m *MockUserUseCase) Delete(ctx context.Context, cpf string) error {
	args := m.Called(ctx, cpf)
	return args.Error(0)
}

// HasUsers mocks the HasUsers method of UserUseCase.
func (m *MockUserUseCase) HasUsers(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

// MockTokenValidator is a mock implementation of TokenValidator for testing.
type MockTokenValidator struct {
	mock.Mock
}

// CheckToken mocks the CheckToken method of TokenValidator.
func (m *MockTokenValidator) CheckToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
