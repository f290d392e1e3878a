// Package mocks provides mock implementations for auth HTTP testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fiscalhub/fiscalhub/internal/auth/usecase"
)

// MockAuthUseCase is a mock implementation of usecase.AuthUseCase.
type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) SignIn(ctx context.Context, cpf, password string) (*usecase.Session, error) {
	args := m.Called(ctx, cpf, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.Session), args.Error(1)
}

func (m *MockAuthUseCase) SignOut(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthUseCase) ValidateToken(ctx context.Context, token string) (*usecase.Identity, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.Identity), args.Error(1)
}

func (m *MockAuthUseCase) CheckToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
