package usecase

import (
	"context"
	"crypto/x509"
	"errors"
	"time"

	"golang.org/x/crypto/pkcs12"

	"github.com/fiscalhub/fiscalhub/internal/crypto"
	apperrors "github.com/fiscalhub/fiscalhub/internal/errors"
	"github.com/fiscalhub/fiscalhub/internal/organization/domain"
	"github.com/fiscalhub/fiscalhub/internal/validation"
)

// organizationUseCase implements the OrganizationUseCase interface.
type organizationUseCase struct {
	orgRepo OrganizationRepository
	cipher  *crypto.Cipher
}

// NewOrganizationUseCase creates a new organization use case. The cipher
// protects certificate passphrases at rest.
func NewOrganizationUseCase(orgRepo OrganizationRepository, cipher *crypto.Cipher) OrganizationUseCase {
	return &organizationUseCase{
		orgRepo: orgRepo,
		cipher:  cipher,
	}
}

// normalizeCNPJ strips formatting and validates check digits.
func normalizeCNPJ(cnpj string) (string, error) {
	normalized := validation.NormalizeDocument(cnpj)
	if !validation.IsValidCNPJ(normalized) {
		return "", domain.ErrInvalidCNPJ
	}
	return normalized, nil
}

// Create registers a new organization.
func (u *organizationUseCase) Create(ctx context.Context, input CreateOrganizationInput) (*domain.Organization, error) {
	cnpj, err := normalizeCNPJ(input.CNPJ)
	if err != nil {
		return nil, err
	}

	existing, err := u.orgRepo.GetByCNPJ(ctx, cnpj)
	if err != nil && !errors.Is(err, domain.ErrOrganizationNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrOrganizationAlreadyExists
	}

	now := time.Now().UTC()
	org := &domain.Organization{
		CNPJ:                     cnpj,
		MunicipalRegistration:    input.MunicipalRegistration,
		Name:                     input.Name,
		SimplesNacional:          input.SimplesNacional,
		MEI:                      input.MEI,
		IntegrationEnvironmentID: input.IntegrationEnvironmentID,
		CreatedAt:                now,
		UpdatedAt:                now,
	}

	if err := u.orgRepo.Create(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

// Get retrieves an organization's metadata by CNPJ.
func (u *organizationUseCase) Get(ctx context.Context, cnpj string) (*domain.Organization, error) {
	normalized, err := normalizeCNPJ(cnpj)
	if err != nil {
		return nil, err
	}
	return u.orgRepo.GetByCNPJ(ctx, normalized)
}

// List retrieves all organizations.
func (u *organizationUseCase) List(ctx context.Context) ([]*domain.Organization, error) {
	return u.orgRepo.List(ctx)
}

// SearchByName retrieves organizations whose name contains the given fragment.
func (u *organizationUseCase) SearchByName(ctx context.Context, name string) ([]*domain.Organization, error) {
	return u.orgRepo.SearchByName(ctx, name)
}

// Update modifies an organization's metadata. Nil fields keep their current values.
func (u *organizationUseCase) Update(ctx context.Context, cnpj string, input UpdateOrganizationInput) (*domain.Organization, error) {
	normalized, err := normalizeCNPJ(cnpj)
	if err != nil {
		return nil, err
	}

	org, err := u.orgRepo.GetByCNPJ(ctx, normalized)
	if err != nil {
		return nil, err
	}

	if input.MunicipalRegistration != nil {
		org.MunicipalRegistration = *input.MunicipalRegistration
	}
	if input.Name != nil {
		org.Name = *input.Name
	}
	if input.SimplesNacional != nil {
		org.SimplesNacional = *input.SimplesNacional
	}
	if input.MEI != nil {
		org.MEI = *input.MEI
	}
	if input.IntegrationEnvironmentID != nil {
		org.IntegrationEnvironmentID = input.IntegrationEnvironmentID
	}
	org.UpdatedAt = time.Now().UTC()

	if err := u.orgRepo.Update(ctx, org); err != nil {
		return nil, err
	}
	return org, nil
}

// Delete removes an organization by CNPJ.
func (u *organizationUseCase) Delete(ctx context.Context, cnpj string) error {
	normalized, err := normalizeCNPJ(cnpj)
	if err != nil {
		return err
	}
	return u.orgRepo.Delete(ctx, normalized)
}

// UploadCertificate stores the certificate bundle with an encrypted passphrase.
func (u *organizationUseCase) UploadCertificate(
	ctx context.Context,
	cnpj string,
	certificate []byte,
	passphrase string,
) (*domain.CertificateStatus, error) {
	normalized, err := normalizeCNPJ(cnpj)
	if err != nil {
		return nil, err
	}
	if len(certificate) == 0 || passphrase == "" {
		return nil, domain.ErrCertificateRequired
	}

	encrypted, err := u.cipher.EncryptString(passphrase)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to encrypt certificate passphrase")
	}

	uploadedAt := time.Now().UTC()
	if err := u.orgRepo.SetCertificate(ctx, normalized, certificate, encrypted, uploadedAt); err != nil {
		return nil, err
	}

	return &domain.CertificateStatus{
		CNPJ:           normalized,
		HasCertificate: true,
		UploadedAt:     &uploadedAt,
	}, nil
}

// CertificateStatus reports certificate presence and upload time.
func (u *organizationUseCase) CertificateStatus(ctx context.Context, cnpj string) (*domain.CertificateStatus, error) {
	normalized, err := normalizeCNPJ(cnpj)
	if err != nil {
		return nil, err
	}

	status, err := u.orgRepo.GetCertificateStatus(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if !status.HasCertificate {
		return nil, domain.ErrCertificateNotFound
	}
	return status, nil
}

// RemoveCertificate clears the certificate bundle.
func (u *organizationUseCase) RemoveCertificate(ctx context.Context, cnpj string) error {
	normalized, err := normalizeCNPJ(cnpj)
	if err != nil {
		return err
	}
	return u.orgRepo.ClearCertificate(ctx, normalized, time.Now().UTC())
}

// FetchCertificate returns the blob and decrypted passphrase for signing components.
func (u *organizationUseCase) FetchCertificate(ctx context.Context, cnpj string) (*domain.CertificateBundle, error) {
	normalized, err := normalizeCNPJ(cnpj)
	if err != nil {
		return nil, err
	}

	certificate, encryptedPassphrase, err := u.orgRepo.GetCertificate(ctx, normalized)
	if err != nil {
		return nil, err
	}

	passphrase, err := u.cipher.DecryptString(encryptedPassphrase)
	if err != nil {
		return nil, err
	}

	return &domain.CertificateBundle{
		PFX:        certificate,
		Passphrase: passphrase,
	}, nil
}

// CertificateInfo parses the stored PKCS#12 bundle and summarizes the leaf
// certificate.
func (u *organizationUseCase) CertificateInfo(ctx context.Context, cnpj string) (*domain.CertificateInfo, error) {
	bundle, err := u.FetchCertificate(ctx, cnpj)
	if err != nil {
		return nil, err
	}

	cert, err := leafCertificate(bundle.PFX, bundle.Passphrase)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
	}

	now := time.Now().UTC()
	return &domain.CertificateInfo{
		Subject:      cert.Subject.String(),
		Issuer:       cert.Issuer.String(),
		SerialNumber: cert.SerialNumber.String(),
		NotBefore:    cert.NotBefore,
		NotAfter:     cert.NotAfter,
		Expired:      now.After(cert.NotAfter),
	}, nil
}

// leafCertificate extracts the first certificate from a PKCS#12 archive.
func leafCertificate(pfx []byte, passphrase string) (*x509.Certificate, error) {
	blocks, err := pkcs12.ToPEM(pfx, passphrase)
	if err != nil {
		return nil, err
	}
	var first *x509.Certificate
	for _, block := range blocks {
		if block.Type != "CERTIFICATE" {
			continue
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			continue
		}
		if first == nil {
			first = cert
		}
		if !cert.IsCA {
			return cert, nil
		}
	}
	if first != nil {
		return first, nil
	}
	return nil, errors.New("no certificate in archive")
}
