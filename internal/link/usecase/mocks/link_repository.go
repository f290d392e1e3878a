// Package mocks provides mock implementations for testing link use cases.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fiscalhub/fiscalhub/internal/link/domain"
)

// MockLinkRepository is a mock implementation of LinkRepository for testing.
type MockLinkRepository struct {
	mock.Mock
}

// Create mocks the Create method of LinkRepository.
func (m *MockLinkRepository) Create(ctx context.Context, link *domain.Link) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

// Get mocks the Get method of LinkRepository.
func (m *MockLinkRepository) Get(ctx context.Context, cpf, cnpj string) (*domain.Link, error) {
	args := m.Called(ctx, cpf, cnpj)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Link), args.Error(1)
}

// List mocks the List method of LinkRepository.
func (m *MockLinkRepository) List(ctx context.Context) ([]*domain.Link, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Link), args.Error(1)
}

// ListByCPF mocks the ListByCPF method of LinkRepository.
func (m *MockLinkRepository) ListByCPF(ctx context.Context, cpf string) ([]*domain.Link, error) {
	args := m.Called(ctx, cpf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Link), args.Error(1)
}

// ListByCNPJ mocks the ListByCNPJ method of LinkRepository.
func (m *MockLinkRepository) ListByCNPJ(ctx context.Context, cnpj string) ([]*domain.Link, error) {
	args := m.Called(ctx, cnpj)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Link), args.Error(1)
}

// Update mocks the Update method of LinkRepository.
func (m *MockLinkRepository) Update(ctx context.Context, link *domain.Link) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

// Delete mocks the Delete method of LinkRepository.
func (m *MockLinkRepository) Delete(ctx context.Context, cpf, cnpj string) error {
	args := m.Called(ctx, cpf, cnpj)
	return args.Error(0)
}
