// Package repository implements data persistence for user-organization links.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fiscalhub/fiscalhub/internal/database"
	apperrors "github.com/fiscalhub/fiscalhub/internal/errors"
	"github.com/fiscalhub/fiscalhub/internal/link/domain"
)

// PostgreSQLLinkRepository implements link persistence for PostgreSQL.
type PostgreSQLLinkRepository struct {
	db *sql.DB
}

// NewPostgreSQLLinkRepository creates a new PostgreSQLLinkRepository.
func NewPostgreSQLLinkRepository(db *sql.DB) *PostgreSQLLinkRepository {
	return &PostgreSQLLinkRepository{db: db}
}

const linkColumns = `cpf, cnpj, permission_code, status, created_at, updated_at`

// Create inserts a new link.
func (r *PostgreSQLLinkRepository) Create(ctx context.Context, link *domain.Link) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO user_organizations (cpf, cnpj, permission_code, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := querier.ExecContext(
		ctx,
		query,
		link.CPF,
		link.CNPJ,
		link.PermissionCode,
		link.Status,
		link.CreatedAt,
		link.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create link")
	}
	return nil
}

// Get retrieves a link by its composite key.
func (r *PostgreSQLLinkRepository) Get(ctx context.Context, cpf, cnpj string) (*domain.Link, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + linkColumns + ` FROM user_organizations WHERE cpf = $1 AND cnpj = $2`

	var link domain.Link
	err := querier.QueryRowContext(ctx, query, cpf, cnpj).Scan(
		&link.CPF,
		&link.CNPJ,
		&link.PermissionCode,
		&link.Status,
		&link.CreatedAt,
		&link.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLinkNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get link")
	}
	return &link, nil
}

// List retrieves all links.
func (r *PostgreSQLLinkRepository) List(ctx context.Context) ([]*domain.Link, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + linkColumns + ` FROM user_organizations ORDER BY cpf, cnpj`

	return r.queryLinks(ctx, querier, query)
}

// ListByCPF retrieves all links for a user.
func (r *PostgreSQLLinkRepository) ListByCPF(ctx context.Context, cpf string) ([]*domain.Link, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + linkColumns + ` FROM user_organizations WHERE cpf = $1 ORDER BY cnpj`

	return r.queryLinks(ctx, querier, query, cpf)
}

// ListByCNPJ retrieves all links for an organization.
func (r *PostgreSQLLinkRepository) ListByCNPJ(ctx context.Context, cnpj string) ([]*domain.Link, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT ` + linkColumns + ` FROM user_organizations WHERE cnpj = $1 ORDER BY cpf`

	return r.queryLinks(ctx, querier, query, cnpj)
}

// Update modifies a link's permission code and status.
func (r *PostgreSQLLinkRepository) Update(ctx context.Context, link *domain.Link) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE user_organizations
			  SET permission_code = $1, status = $2, updated_at = $3
			  WHERE cpf = $4 AND cnpj = $5`

	result, err := querier.ExecContext(
		ctx,
		query,
		link.PermissionCode,
		link.Status,
		link.UpdatedAt,
		link.CPF,
		link.CNPJ,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update link")
	}
	return checkAffected(result)
}

// Delete removes a link by its composite key.
func (r *PostgreSQLLinkRepository) Delete(ctx context.Context, cpf, cnpj string) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(
		ctx,
		`DELETE FROM user_organizations WHERE cpf = $1 AND cnpj = $2`,
		cpf,
		cnpj,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete link")
	}
	return checkAffected(result)
}

func (r *PostgreSQLLinkRepository) queryLinks(
	ctx context.Context,
	querier database.Querier,
	query string,
	args ...any,
) ([]*domain.Link, error) {
	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to query links")
	}
	defer rows.Close()

	var links []*domain.Link
	for rows.Next() {
		var link domain.Link
		if err := rows.Scan(
			&link.CPF,
			&link.CNPJ,
			&link.PermissionCode,
			&link.Status,
			&link.CreatedAt,
			&link.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan link")
		}
		links = append(links, &link)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate links")
	}
	return links, nil
}

// checkAffected converts a zero rows-affected result into ErrLinkNotFound.
func checkAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check affected rows")
	}
	if rows == 0 {
		return domain.ErrLinkNotFound
	}
	return nil
}
