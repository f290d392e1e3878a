// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fiscalhub/fiscalhub/internal/organization/domain"
	"github.com/fiscalhub/fiscalhub/internal/organization/usecase"
)

// MockOrganizationUseCase is a mock implementation of OrganizationUseCase for testing.
type MockOrganizationUseCase struct {
	mock.Mock
}

// Create mocks the Create method of OrganizationUseCase.
func (m *MockOrganizationUseCase) Create(ctx context.Context, input usecase.CreateOrganizationInput) (*domain.Organization, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}

// Get mocks the Get method of OrganizationUseCase.
func (m *MockOrganizationUseCase) Get(ctx context.Context, cnpj string) (*domain.Organization, error) {
	args := m.Called(ctx, cnpj)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}

// List mocks the List method of OrganizationUseCase.
func (m *MockOrganizationUseCase) List(ctx context.Context) ([]*domain.Organization, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Organization), args.Error(1)
}

// SearchByName mocks the SearchByName method of OrganizationUseCase.
func (m *MockOrganizationUseCase) SearchByName(ctx context.Context, name string) ([]*domain.Organization, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Organization), args.Error(1)
}

// Update mocks the Update method of OrganizationUseCase.
func (m *MockOrganizationUseCase) Update(ctx context.Context, cnpj string, input usecase.UpdateOrganizationInput) (*domain.Organization, error) {
	args := m.Called(ctx, cnpj, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Organization), args.Error(1)
}

// Delete mocks the Delete method of OrganizationUseCase.
func (m *MockOrganizationUseCase) Delete(ctx context.Context, cnpj string) error {
	args := m.Called(ctx, cnpj)
	return args.Error(0)
}

// UploadCertificate mocks the UploadCertificate method of OrganizationUseCase.
func (m *MockOrganizationUseCase) UploadCertificate(ctx context.Context, cnpj string, certificate []byte, passphrase string) (*domain.CertificateStatus, error) {
	args := m.Called(ctx, cnpj, certificate, passphrase)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CertificateStatus), args.Error(1)
}

// CertificateStatus mocks the CertificateStatus method of OrganizationUseCase.
func (m *MockOrganizationUseCase) CertificateStatus(ctx context.Context, cnpj string) (*domain.CertificateStatus, error) {
	args := m.Called(ctx, cnpj)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CertificateStatus), args.Error(1)
}

// RemoveCertificate mocks the RemoveCertificate method of OrganizationUseCase.
func (m *MockOrganizationUseCase) RemoveCertificate(ctx context.Context, cnpj string) error {
	args := m.Called(ctx, cnpj)
	return args.Error(0)
}

// FetchCertificate mocks the FetchCertificate method of OrganizationUseCase.
func (m *MockOrganizationUseCase) FetchCertificate(ctx context.Context, cnpj string) (*domain.CertificateBundle, error) {
	args := m.Called(ctx, cnpj)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CertificateBundle), args.Error(1)
}

// CertificateInfo mocks the CertificateInfo method of OrganizationUseCase.
func (m *MockOrganizationUseCase) CertificateInfo(ctx context.Context, cnpj string) (*domain.CertificateInfo, error) {
	args := m.Called(ctx, cnpj)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CertificateInfo), args.Error(1)
}
