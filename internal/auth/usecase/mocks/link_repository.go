package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	linkdomain "github.com/fiscalhub/fiscalhub/internal/link/domain"
)

// MockLinkRepository is a mock implementation of usecase.LinkRepository.
type MockLinkRepository struct {
	mock.Mock
}

func (m *MockLinkRepository) ListByCPF(ctx context.Context, cpf string) ([]*linkdomain.Link, error) {
	args := m.Called(ctx, cpf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*linkdomain.Link), args.Error(1)
}
