// Package mocks provides mock implementations for testing organization use cases.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/fiscalhub/fiscalhub/internal/organization/domain"
)

// MockOrganizationRepository is a mock implementation of OrganizationRepository for testing.
type MockOrganizationRepository struct {
	mock.Mock
}

// Create mocks the Create method of OrganizationRepository.
func (m *MockOrganizationRepository) Create(ctx context.Context, org *domain.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

// GetByCNPJ mocks the GetByCNPJ method of OrganizationRepository.
func (m *MockOrganizationRepository) GetByCNPJ(ctx context.Context, cnpj string) (*domain.Organization, error) {
	args := m.Called(ctx, cnpj)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}

// List mocks the List method of OrganizationRepository.
func (m *MockOrganizationRepository) List(ctx context.Context) ([]*domain.Organization, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Organization), args.Error(1)
}

// SearchByName mocks the SearchByName method of OrganizationRepository.
func (m *MockOrganizationRepository) SearchByName(ctx context.Context, name string) ([]*domain.Organization, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Organization), args.Error(1)
}

// Update mocks the Update method of OrganizationRepository.
func (m *MockOrganizationRepository) Update(ctx context.Context, org *domain.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

// Delete mocks the Delete method of OrganizationRepository.
func (m *MockOrganizationRepository) Delete(ctx context.Context, cnpj string) error {
	args := m.Called(ctx, cnpj)
	return args.Error(0)
}

// SetCertificate mocks the SetCertificate method of OrganizationRepository.
func (m *MockOrganizationRepository) SetCertificate(
	ctx context.Context,
	cnpj string,
	certificate []byte,
	encryptedPassphrase string,
	uploadedAt time.Time,
) error {
	args := m.Called(ctx, cnpj, certificate, encryptedPassphrase, uploadedAt)
	return args.Error(0)
}

// ClearCertificate mocks the ClearCertificate method of OrganizationRepository.
func (m *MockOrganizationRepository) ClearCertificate(ctx context.Context, cnpj string, removedAt time.Time) error {
	args := m.Called(ctx, cnpj, removedAt)
	return args.Error(0)
}

// GetCertificate mocks the GetCertificate method of OrganizationRepository.
func (m *MockOrganizationRepository) GetCertificate(ctx context.Context, cnpj string) ([]byte, string, error) {
	args := m.Called(ctx, cnpj)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

// GetCertificateStatus mocks the GetCertificateStatus method of OrganizationRepository.
func (m *MockOrganizationRepository) GetCertificateStatus(ctx context.Context, cnpj string) (*domain.CertificateStatus, error) {
	args := m.Called(ctx, cnpj)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CertificateStatus), args.Error(1)
}
