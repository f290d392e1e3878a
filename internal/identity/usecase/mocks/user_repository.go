// Package mocks provides mock implementations for testing user use cases.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fiscalhub/fiscalhub/internal/identity/domain"
)

// MockUserRepository is a mock implementation of UserRepository for testing.
type MockUserRepository struct {
	mock.Mock
}

// Create mocks the Create method of UserRepository.
func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// GetByCPF mocks the GetByCPF method of UserRepository.
func (m *MockUserRepository) GetByCPF(ctx context.Context, cpf string) (*domain.User, error) {
	args := m.Called(ctx, cpf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// GetByCPFWithPassword mocks the GetByCPFWithPassword method of UserRepository.
func (m *MockUserRepository) GetByCPFWithPassword(ctx context.Context, cpf string) (*domain.User, error) {
	args := m.Called(ctx, cpf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// List mocks the List method of UserRepository.
func (m *MockUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

// SearchByName mocks the SearchByName method of UserRepository.
func (m *MockUserRepository) SearchByName(ctx context.Context, name string) ([]*domain.User, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

// Update mocks the Update method of UserRepository.
func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// Delete mocks the Delete method of UserRepository.
func (m *MockUserRepository) Delete(ctx context.Context, cpf string) error {
	args := m.Called(ctx, cpf)
	return args.Error(0)
}

// Count mocks the Count method of UserRepository.
func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// CountAdmins mocks the CountAdmins method of UserRepository.
func (m *MockUserRepository) CountAdmins(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
