package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fiscalhub/fiscalhub/internal/database"
	apperrors "github.com/fiscalhub/fiscalhub/internal/errors"
	"github.com/fiscalhub/fiscalhub/internal/organization/domain"
)

// MySQLOrganizationRepository implements organization persistence for MySQL.
type MySQLOrganizationRepository struct {
	db *sql.DB
}

// NewMySQLOrganizationRepository creates a new MySQLOrganizationRepository.
func NewMySQLOrganizationRepository(db *sql.DB) *MySQLOrganizationRepository {
	return &MySQLOrganizationRepository{db: db}
}

const mysqlOrgMetadataColumns = `cnpj, municipal_registration, name, simples_nacional, mei,
	integration_environment_id, cert_uploaded_at, created_at, updated_at`

// Create inserts a new organization.
func (r *MySQLOrganizationRepository) Create(ctx context.Context, org *domain.Organization) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO organizations
			  (cnpj, municipal_registration, name, simples_nacional, mei, integration_environment_id, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := querier.ExecContext(
		ctx,
		query,
		org.CNPJ,
		org.MunicipalRegistration,
		org.Name,
		org.SimplesNacional,
		org.MEI,
		org.IntegrationEnvironmentID,
		org.CreatedAt,
		org.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create organization")
	}
	return nil
}

// GetByCNPJ retrieves an organization's metadata by CNPJ.
func (r *MySQLOrganizationRepository) GetByCNPJ(ctx context.Context, cnpj string) (*domain.Organization, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + mysqlOrgMetadataColumns + ` FROM organizations WHERE cnpj = ?`

	org, err := scanOrganization(querier.QueryRowContext(ctx, query, cnpj))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get organization")
	}
	return org, nil
}

// List retrieves all organizations' metadata ordered by name.
func (r *MySQLOrganizationRepository) List(ctx context.Context) ([]*domain.Organization, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + mysqlOrgMetadataColumns + ` FROM organizations ORDER BY name`

	return r.queryOrganizations(ctx, querier, query)
}

// SearchByName retrieves organizations whose name contains the given fragment.
func (r *MySQLOrganizationRepository) SearchByName(ctx context.Context, name string) ([]*domain.Organization, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + mysqlOrgMetadataColumns + ` FROM organizations
			  WHERE name LIKE CONCAT('%', ?, '%') ORDER BY name`

	return r.queryOrganizations(ctx, querier, query, name)
}

// Update modifies an organization's metadata. Certificate columns are not touched.
func (r *MySQLOrganizationRepository) Update(ctx context.Context, org *domain.Organization) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE organizations
			  SET municipal_registration = ?, name = ?, simples_nacional = ?, mei = ?,
				  integration_environment_id = ?, updated_at = ?
			  WHERE cnpj = ?`

	result, err := querier.ExecContext(
		ctx,
		query,
		org.MunicipalRegistration,
		org.Name,
		org.SimplesNacional,
		org.MEI,
		org.IntegrationEnvironmentID,
		org.UpdatedAt,
		org.CNPJ,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update organization")
	}
	return checkAffected(result, domain.ErrOrganizationNotFound)
}

// Delete removes an organization by CNPJ.
func (r *MySQLOrganizationRepository) Delete(ctx context.Context, cnpj string) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM organizations WHERE cnpj = ?`, cnpj)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete organization")
	}
	return checkAffected(result, domain.ErrOrganizationNotFound)
}

// SetCertificate stores the certificate bundle in a single statement.
func (r *MySQLOrganizationRepository) SetCertificate(
	ctx context.Context,
	cnpj string,
	certificate []byte,
	encryptedPassphrase string,
	uploadedAt time.Time,
) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE organizations
			  SET certificate = ?, cert_passphrase = ?, cert_uploaded_at = ?, updated_at = ?
			  WHERE cnpj = ?`

	result, err := querier.ExecContext(ctx, query, certificate, encryptedPassphrase, uploadedAt, uploadedAt, cnpj)
	if err != nil {
		return apperrors.Wrap(err, "failed to store certificate")
	}
	return checkAffected(result, domain.ErrOrganizationNotFound)
}

// ClearCertificate nulls the certificate bundle in a single statement.
func (r *MySQLOrganizationRepository) ClearCertificate(ctx context.Context, cnpj string, removedAt time.Time) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE organizations
			  SET certificate = NULL, cert_passphrase = NULL, cert_uploaded_at = NULL, updated_at = ?
			  WHERE cnpj = ? AND certificate IS NOT NULL`

	result, err := querier.ExecContext(ctx, query, removedAt, cnpj)
	if err != nil {
		return apperrors.Wrap(err, "failed to remove certificate")
	}
	return checkAffected(result, domain.ErrCertificateNotFound)
}

// GetCertificate retrieves the stored certificate blob and encrypted passphrase.
func (r *MySQLOrganizationRepository) GetCertificate(ctx context.Context, cnpj string) ([]byte, string, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT certificate, cert_passphrase FROM organizations WHERE cnpj = ?`

	var certificate []byte
	var passphrase sql.NullString
	err := querier.QueryRowContext(ctx, query, cnpj).Scan(&certificate, &passphrase)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", domain.ErrCertificateNotFound
		}
		return nil, "", apperrors.Wrap(err, "failed to get certificate")
	}
	if len(certificate) == 0 || !passphrase.Valid {
		return nil, "", domain.ErrCertificateNotFound
	}
	return certificate, passphrase.String, nil
}

// GetCertificateStatus reports certificate presence without loading the blob.
func (r *MySQLOrganizationRepository) GetCertificateStatus(ctx context.Context, cnpj string) (*domain.CertificateStatus, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT cnpj, certificate IS NOT NULL, cert_uploaded_at FROM organizations WHERE cnpj = ?`

	var status domain.CertificateStatus
	var uploadedAt sql.NullTime
	err := querier.QueryRowContext(ctx, query, cnpj).Scan(&status.CNPJ, &status.HasCertificate, &uploadedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrOrganizationNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get certificate status")
	}
	if uploadedAt.Valid {
		status.UploadedAt = &uploadedAt.Time
	}
	return &status, nil
}

func (r *MySQLOrganizationRepository) queryOrganizations(
	ctx context.Context,
	querier database.Querier,
	query string,
	args ...any,
) ([]*domain.Organization, error) {
	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to query organizations")
	}
	defer rows.Close()

	var orgs []*domain.Organization
	for rows.Next() {
		org, err := scanOrganization(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan organization")
		}
		orgs = append(orgs, org)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate organizations")
	}
	return orgs, nil
}
