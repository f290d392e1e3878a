// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fiscalhub/fiscalhub/internal/link/domain"
	"github.com/fiscalhub/fiscalhub/internal/link/usecase"
)

// MockLinkUseCase is a mock implementation of LinkUseCase for testing.
type MockLinkUseCase struct {
	mock.Mock
}

// Create mocks the Create method of LinkUseCase.
func (m *MockLinkUseCase) Create(ctx context.Context, input usecase.CreateLinkInput) (*domain.Link, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Link), args.Error(1)
}

// CreateBatch mocks the CreateBatch method of LinkUseCase.
func (m *MockLinkUseCase) CreateBatch(ctx context.Context, inputs []usecase.CreateLinkInput) ([]*domain.Link, error) {
	args := m.Called(ctx, inputs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Link), args.Error(1)
}

// Get mocks the Get method of LinkUseCase.
func (m *MockLinkUseCase) Get(ctx context.Context, cpf, cnpj string) (*domain.Link, error) {
	args := m.Called(ctx, cpf, cnpj)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Link), args.Error(1)
}

// List mocks the List method of LinkUseCase.
func (m *MockLinkUseCase) List(ctx context.Context) ([]*domain.Link, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Link), args.Error(1)
}

// ListByCPF mocks the ListByCPF method of LinkUseCase.
func (m *MockLinkUseCase) ListByCPF(ctx context.Context, cpf string) ([]*domain.Link, error) {
	args := m.Called(ctx, cpf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Link), args.Error(1)
}

// ListByCNPJ mocks the ListByCNPJ method of LinkUseCase.
func (m *MockLinkUseCase) ListByCNPJ(ctx context.Context, cnpj string) ([]*domain.Link, error) {
	args := m.Called(ctx, cnpj)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Link), args.Error(1)
}

// Update mocks the Update method of LinkUseCase.
func (m *MockLinkUseCase) Update(ctx context.Context, cpf, cnpj string, input usecase.UpdateLinkInput) (*domain.Link, error) {
	args := m.Called(ctx, cpf, cnpj, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Link), args.Error(1)
}

// Delete mocks the Delete method of LinkUseCase.
func (m *MockLinkUseCase) Delete(ctx context.Context, cpf, cnpj string) error {
	args := m.Called(ctx, cpf, cnpj)
	return args.Error(0)
}
