// Package usecase defines the interfaces and implementations for organization
// management use cases, including the signing certificate bundle lifecycle.
package usecase

import (
	"context"
	"time"

	"github.com/fiscalhub/fiscalhub/internal/organization/domain"
)

// OrganizationRepository defines the interface for organization persistence operations.
type OrganizationRepository interface {
	Create(ctx context.Context, org *domain.Organization) error
	GetByCNPJ(ctx context.Context, cnpj string) (*domain.Organization, error)
	List(ctx context.Context) ([]*domain.Organization, error)
	SearchByName(ctx context.Context, name string) ([]*domain.Organization, error)
	Update(ctx context.Context, org *domain.Organization) error
	Delete(ctx context.Context, cnpj string) error
	SetCertificate(ctx context.Context, cnpj string, certificate []byte, encryptedPassphrase string, uploadedAt time.Time) error
	ClearCertificate(ctx context.Context, cnpj string, removedAt time.Time) error
	GetCertificate(ctx context.Context, cnpj string) ([]byte, string, error)
	GetCertificateStatus(ctx context.Context, cnpj string) (*domain.CertificateStatus, error)
}

// CreateOrganizationInput carries the fields required to register an organization.
type CreateOrganizationInput struct {
	CNPJ                     string
	MunicipalRegistration    string
	Name                     string
	SimplesNacional          string
	MEI                      string
	IntegrationEnvironmentID *int64
}

// UpdateOrganizationInput carries the fields that may change on an organization.
type UpdateOrganizationInput struct {
	MunicipalRegistration    *string
	Name                     *string
	SimplesNacional          *string
	MEI                      *string
	IntegrationEnvironmentID *int64
}

// OrganizationUseCase defines the interface for organization business logic.
type OrganizationUseCase interface {
	Create(ctx context.Context, input CreateOrganizationInput) (*domain.Organization, error)
	Get(ctx context.Context, cnpj string) (*domain.Organization, error)
	List(ctx context.Context) ([]*domain.Organization, error)
	SearchByName(ctx context.Context, name string) ([]*domain.Organization, error)
	Update(ctx context.Context, cnpj string, input UpdateOrganizationInput) (*domain.Organization, error)
	Delete(ctx context.Context, cnpj string) error

	// UploadCertificate stores the PKCS#12 blob with its passphrase encrypted
	// at rest. Blob, passphrase, and timestamp are set together.
	UploadCertificate(ctx context.Context, cnpj string, certificate []byte, passphrase string) (*domain.CertificateStatus, error)
	// CertificateStatus reports presence and upload time only.
	CertificateStatus(ctx context.Context, cnpj string) (*domain.CertificateStatus, error)
	// RemoveCertificate clears the whole bundle.
	RemoveCertificate(ctx context.Context, cnpj string) error
	// FetchCertificate returns the blob and decrypted passphrase for signing
	// components. Not exposed over HTTP.
	FetchCertificate(ctx context.Context, cnpj string) (*domain.CertificateBundle, error)
	// CertificateInfo parses the stored bundle and returns subject, issuer,
	// and validity metadata.
	CertificateInfo(ctx context.Context, cnpj string) (*domain.CertificateInfo, error)
}
