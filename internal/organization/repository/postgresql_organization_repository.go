// Package repository implements data persistence for organization entities.
//
// Certificate bundle columns (certificate, cert_passphrase, cert_uploaded_at)
// are always written together in a single UPDATE so the bundle can never be
// partially set. Metadata queries never select the blob or the passphrase.
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

// PostgreSQLOrganizationRepository implements organization persistence for PostgreSQL.
type PostgreSQLOrganizationRepository struct {
	db *sql.DB
}

// NewPostgreSQLOrganizationRepository creates a new PostgreSQLOrganizationRepository.
func NewPostgreSQLOrganizationRepository(db *sql.DB) *PostgreSQLOrganizationRepository {
	return &PostgreSQLOrganizationRepository{db: db}
}

const pgOrgMetadataColumns = `cnpj, municipal_registration, name, simples_nacional, mei,
	integration_environment_id, cert_uploaded_at, created_at, updated_at`

// Create inserts a new organization.
func (r *PostgreSQLOrganizationRepository) Create(ctx context.Context, org *domain.Organization) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO organizations
			  (cnpj, municipal_registration, name, simples_nacional, mei, integration_environment_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

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
func (r *PostgreSQLOrganizationRepository) GetByCNPJ(ctx context.Context, cnpj string) (*domain.Organization, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + pgOrgMetadataColumns + ` FROM organizations WHERE cnpj = $1`

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
func (r *PostgreSQLOrganizationRepository) List(ctx context.Context) ([]*domain.Organization, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + pgOrgMetadataColumns + ` FROM organizations ORDER BY name`

	return r.queryOrganizations(ctx, querier, query)
}

// SearchByName retrieves organizations whose name contains the given fragment.
func (r *PostgreSQLOrganizationRepository) SearchByName(ctx context.Context, name string) ([]*domain.Organization, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + pgOrgMetadataColumns + ` FROM organizations
			  WHERE name ILIKE '%' || $1 || '%' ORDER BY name`

	return r.queryOrganizations(ctx, querier, query, name)
}

// Update modifies an organization's metadata. Certificate columns are not touched.
func (r *PostgreSQLOrganizationRepository) Update(ctx context.Context, org *domain.Organization) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE organizations
			  SET municipal_registration = $1, name = $2, simples_nacional = $3, mei = $4,
				  integration_environment_id = $5, updated_at = $6
			  WHERE cnpj = $7`

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
func (r *PostgreSQLOrganizationRepository) Delete(ctx context.Context, cnpj string) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM organizations WHERE cnpj = $1`, cnpj)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete organization")
	}
	return checkAffected(result, domain.ErrOrganizationNotFound)
}

// SetCertificate stores the certificate bundle in a single statement.
func (r *PostgreSQLOrganizationRepository) SetCertificate(
	ctx context.Context,
	cnpj string,
	certificate []byte,
	encryptedPassphrase string,
	uploadedAt time.Time,
) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE organizations
			  SET certificate = $1, cert_passphrase = $2, cert_uploaded_at = $3, updated_at = $4
			  WHERE cnpj = $5`

	result, err := querier.ExecContext(ctx, query, certificate, encryptedPassphrase, uploadedAt, uploadedAt, cnpj)
	if err != nil {
		return apperrors.Wrap(err, "failed to store certificate")
	}
	return checkAffected(result, domain.ErrOrganizationNotFound)
}

// ClearCertificate nulls the certificate bundle in a single statement.
// Returns ErrCertificateNotFound when the organization is missing or has no
// certificate stored.
func (r *PostgreSQLOrganizationRepository) ClearCertificate(ctx context.Context, cnpj string, removedAt time.Time) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE organizations
			  SET certificate = NULL, cert_passphrase = NULL, cert_uploaded_at = NULL, updated_at = $1
			  WHERE cnpj = $2 AND certificate IS NOT NULL`

	result, err := querier.ExecContext(ctx, query, removedAt, cnpj)
	if err != nil {
		return apperrors.Wrap(err, "failed to remove certificate")
	}
	return checkAffected(result, domain.ErrCertificateNotFound)
}

// GetCertificate retrieves the stored certificate blob and encrypted passphrase.
func (r *PostgreSQLOrganizationRepository) GetCertificate(ctx context.Context, cnpj string) ([]byte, string, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT certificate, cert_passphrase FROM organizations WHERE cnpj = $1`

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
func (r *PostgreSQLOrganizationRepository) GetCertificateStatus(ctx context.Context, cnpj string) (*domain.CertificateStatus, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT cnpj, certificate IS NOT NULL, cert_uploaded_at FROM organizations WHERE cnpj = $1`

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

func (r *PostgreSQLOrganizationRepository) queryOrganizations(
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

// rowScanner abstracts sql.Row and sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanOrganization scans the metadata column set into an Organization.
func scanOrganization(row rowScanner) (*domain.Organization, error) {
	var org domain.Organization
	var municipalRegistration sql.NullString
	var mei sql.NullString
	var envID sql.NullInt64
	var uploadedAt sql.NullTime

	err := row.Scan(
		&org.CNPJ,
		&municipalRegistration,
		&org.Name,
		&org.SimplesNacional,
		&mei,
		&envID,
		&uploadedAt,
		&org.CreatedAt,
		&org.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	org.MunicipalRegistration = municipalRegistration.String
	org.MEI = mei.String
	if envID.Valid {
		org.IntegrationEnvironmentID = &envID.Int64
	}
	if uploadedAt.Valid {
		org.CertUploadedAt = &uploadedAt.Time
	}
	return &org, nil
}

// checkAffected converts a zero rows-affected result into notFoundErr.
func checkAffected(result sql.Result, notFoundErr error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check affected rows")
	}
	if rows == 0 {
		return notFoundErr
	}
	return nil
}
