// Package domain defines the core entities for organization management.
//
// Organizations are keyed by CNPJ and may carry a PKCS#12 signing certificate.
// The certificate blob, its encrypted passphrase, and the upload timestamp form
// a single bundle: either all three are set or all three are null.
package domain

import (
	"time"

	apperrors "github.com/fiscalhub/fiscalhub/internal/errors"
)

// Tax regime flag values stored in CHAR columns.
const (
	FlagYes = "1"
	FlagNo  = "0"
)

// Organization represents a registered company.
type Organization struct {
	CNPJ                     string
	MunicipalRegistration    string
	Name                     string
	SimplesNacional          string
	MEI                      string
	IntegrationEnvironmentID *int64
	CreatedAt                time.Time
	UpdatedAt                time.Time

	// Certificate bundle. Never populated by list or metadata queries.
	Certificate    []byte
	CertPassphrase string
	CertUploadedAt *time.Time
}

// HasCertificate reports whether a signing certificate is stored.
func (o *Organization) HasCertificate() bool {
	return len(o.Certificate) > 0
}

// CertificateBundle carries the decrypted signing material for internal
// consumers. Callers must not persist or log the passphrase.
type CertificateBundle struct {
	PFX        []byte
	Passphrase string
}

// CertificateStatus describes certificate presence without exposing the blob
// or passphrase.
type CertificateStatus struct {
	CNPJ           string
	HasCertificate bool
	UploadedAt     *time.Time
}

// CertificateInfo summarizes the stored PKCS#12 certificate for operational
// queries. It never carries key material.
type CertificateInfo struct {
	Subject      string
	Issuer       string
	SerialNumber string
	NotBefore    time.Time
	NotAfter     time.Time
	Expired      bool
}

// Domain errors for organization operations.
var (
	ErrOrganizationNotFound      = apperrors.Wrap(apperrors.ErrNotFound, "organization not found")
	ErrOrganizationAlreadyExists = apperrors.Wrap(apperrors.ErrConflict, "organization already exists")
	ErrInvalidCNPJ               = apperrors.Wrap(apperrors.ErrInvalidInput, "invalid CNPJ")
	ErrCertificateNotFound       = apperrors.Wrap(apperrors.ErrNotFound, "certificate not found")
	ErrCertificateRequired       = apperrors.Wrap(apperrors.ErrInvalidInput, "certificate and passphrase are required")
)
