package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fiscalhub/fiscalhub/internal/crypto"
	"github.com/fiscalhub/fiscalhub/internal/organization/domain"
	"github.com/fiscalhub/fiscalhub/internal/organization/usecase/mocks"
)

const testKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func newTestUseCase(t *testing.T, repo OrganizationRepository) OrganizationUseCase {
	t.Helper()
	cipher, err := crypto.NewCipherFromHex(testKeyHex)
	require.NoError(t, err)
	return NewOrganizationUseCase(repo, cipher)
}

// TestOrganizationUseCase_Create tests the Create method of organizationUseCase.
func TestOrganizationUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(mocks.MockOrganizationRepository)
		repo.On("GetByCNPJ", ctx, "11222333000181").Return(nil, domain.ErrOrganizationNotFound)
		repo.On("Create", ctx, mock.AnythingOfType("*domain.Organization")).Return(nil)

		uc := newTestUseCase(t, repo)
		org, err := uc.Create(ctx, CreateOrganizationInput{
			CNPJ:            "11.222.333/0001-81",
			Name:            "Padaria Central LTDA",
			SimplesNacional: domain.FlagYes,
		})

		require.NoError(t, err)
		assert.Equal(t, "11222333000181", org.CNPJ)
		repo.AssertExpectations(t)
	})

	t.Run("InvalidCheckDigits", func(t *testing.T) {
		repo := new(mocks.MockOrganizationRepository)

		uc := newTestUseCase(t, repo)
		_, err := uc.Create(ctx, CreateOrganizationInput{CNPJ: "11222333000182", Name: "X"})

		assert.ErrorIs(t, err, domain.ErrInvalidCNPJ)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("AlreadyExists", func(t *testing.T) {
		repo := new(mocks.MockOrganizationRepository)
		repo.On("GetByCNPJ", ctx, "11222333000181").
			Return(&domain.Organization{CNPJ: "11222333000181"}, nil)

		uc := newTestUseCase(t, repo)
		_, err := uc.Create(ctx, CreateOrganizationInput{CNPJ: "11222333000181", Name: "X"})

		assert.ErrorIs(t, err, domain.ErrOrganizationAlreadyExists)
	})
}

// TestOrganizationUseCase_UploadCertificate tests certificate upload behavior.
func TestOrganizationUseCase_UploadCertificate(t *testing.T) {
	ctx := context.Background()
	blob := []byte{0x30, 0x82, 0x01, 0x00}

	t.Run("EncryptsPassphraseBeforeStoring", func(t *testing.T) {
		repo := new(mocks.MockOrganizationRepository)

		var storedPassphrase string
		repo.On("SetCertificate", ctx, "11222333000181", blob, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
			Run(func(args mock.Arguments) {
				storedPassphrase = args.String(3)
			}).
			Return(nil)

		uc := newTestUseCase(t, repo)
		status, err := uc.UploadCertificate(ctx, "11222333000181", blob, "cert-password")

		require.NoError(t, err)
		assert.True(t, status.HasCertificate)
		assert.NotNil(t, status.UploadedAt)

		// Passphrase must be stored in envelope form, never plaintext.
		assert.Contains(t, storedPassphrase, "enc:v1:")
		assert.NotContains(t, storedPassphrase, "cert-password")
	})

	t.Run("RejectsEmptyCertificate", func(t *testing.T) {
		repo := new(mocks.MockOrganizationRepository)

		uc := newTestUseCase(t, repo)
		_, err := uc.UploadCertificate(ctx, "11222333000181", nil, "cert-password")

		assert.ErrorIs(t, err, domain.ErrCertificateRequired)
		repo.AssertNotCalled(t, "SetCertificate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("RejectsEmptyPassphrase", func(t *testing.T) {
		repo := new(mocks.MockOrganizationRepository)

		uc := newTestUseCase(t, repo)
		_, err := uc.UploadCertificate(ctx, "11222333000181", blob, "")

		assert.ErrorIs(t, err, domain.ErrCertificateRequired)
	})
}

// TestOrganizationUseCase_FetchCertificate tests round-tripping the passphrase
// through the repository.
func TestOrganizationUseCase_FetchCertificate(t *testing.T) {
	ctx := context.Background()
	blob := []byte{0x30, 0x82, 0x01, 0x00}

	t.Run("DecryptsStoredPassphrase", func(t *testing.T) {
		cipher, err := crypto.NewCipherFromHex(testKeyHex)
		require.NoError(t, err)
		encrypted, err := cipher.EncryptString("cert-password")
		require.NoError(t, err)

		repo := new(mocks.MockOrganizationRepository)
		repo.On("GetCertificate", ctx, "11222333000181").Return(blob, encrypted, nil)

		uc := NewOrganizationUseCase(repo, cipher)
		bundle, err := uc.FetchCertificate(ctx, "11222333000181")

		require.NoError(t, err)
		assert.Equal(t, blob, bundle.PFX)
		assert.Equal(t, "cert-password", bundle.Passphrase)
	})

	t.Run("LegacyPlaintextPassphrase", func(t *testing.T) {
		repo := new(mocks.MockOrganizationRepository)
		repo.On("GetCertificate", ctx, "11222333000181").Return(blob, "legacy-plain", nil)

		uc := newTestUseCase(t, repo)
		bundle, err := uc.FetchCertificate(ctx, "11222333000181")

		require.NoError(t, err)
		assert.Equal(t, "legacy-plain", bundle.Passphrase)
	})

	t.Run("NotFound", func(t *testing.T) {
		repo := new(mocks.MockOrganizationRepository)
		repo.On("GetCertificate", ctx, "11222333000181").
			Return(nil, "", domain.ErrCertificateNotFound)

		uc := newTestUseCase(t, repo)
		_, err := uc.FetchCertificate(ctx, "11222333000181")

		assert.ErrorIs(t, err, domain.ErrCertificateNotFound)
	})
}

// TestOrganizationUseCase_CertificateStatus tests the status query.
func TestOrganizationUseCase_CertificateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Present", func(t *testing.T) {
		uploadedAt := time.Now().UTC()
		repo := new(mocks.MockOrganizationRepository)
		repo.On("GetCertificateStatus", ctx, "11222333000181").Return(&domain.CertificateStatus{
			CNPJ:           "11222333000181",
			HasCertificate: true,
			UploadedAt:     &uploadedAt,
		}, nil)

		uc := newTestUseCase(t, repo)
		status, err := uc.CertificateStatus(ctx, "11222333000181")

		require.NoError(t, err)
		assert.True(t, status.HasCertificate)
	})

	t.Run("AbsentBundleIsNotFound", func(t *testing.T) {
		repo := new(mocks.MockOrganizationRepository)
		repo.On("GetCertificateStatus", ctx, "11222333000181").Return(&domain.CertificateStatus{
			CNPJ:           "11222333000181",
			HasCertificate: false,
		}, nil)

		uc := newTestUseCase(t, repo)
		_, err := uc.CertificateStatus(ctx, "11222333000181")

		assert.ErrorIs(t, err, domain.ErrCertificateNotFound)
	})
}

// TestOrganizationUseCase_RemoveCertificate tests bundle removal.
func TestOrganizationUseCase_RemoveCertificate(t *testing.T) {
	ctx := context.Background()

	repo := new(mocks.MockOrganizationRepository)
	repo.On("ClearCertificate", ctx, "11222333000181", mock.AnythingOfType("time.Time")).Return(nil)

	uc := newTestUseCase(t, repo)
	err := uc.RemoveCertificate(ctx, "11.222.333/0001-81")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

// TestOrganizationUseCase_Update tests partial metadata updates.
func TestOrganizationUseCase_Update(t *testing.T) {
	ctx := context.Background()

	repo := new(mocks.MockOrganizationRepository)
	stored := &domain.Organization{
		CNPJ:            "11222333000181",
		Name:            "Padaria Central LTDA",
		SimplesNacional: domain.FlagYes,
		MEI:             domain.FlagNo,
	}
	repo.On("GetByCNPJ", ctx, "11222333000181").Return(stored, nil)
	repo.On("Update", ctx, mock.MatchedBy(func(o *domain.Organization) bool {
		return o.Name == "Padaria Nova LTDA" && o.SimplesNacional == domain.FlagYes
	})).Return(nil)

	newName := "Padaria Nova LTDA"
	uc := newTestUseCase(t, repo)
	org, err := uc.Update(ctx, "11222333000181", UpdateOrganizationInput{Name: &newName})

	require.NoError(t, err)
	assert.Equal(t, "Padaria Nova LTDA", org.Name)
	repo.AssertExpectations(t)
}
