// Package repository implements data persistence for user entities.
//
// Provides PostgreSQL and MySQL implementations with transaction support via
// database.GetTx(). Password hashes are excluded from every query except the
// explicit credential lookup used by authentication.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fiscalhub/fiscalhub/internal/database"
	apperrors "github.com/fiscalhub/fiscalhub/internal/errors"
	"github.com/fiscalhub/fiscalhub/internal/identity/domain"
)

// PostgreSQLUserRepository implements user persistence for PostgreSQL.
type PostgreSQLUserRepository struct {
	db *sql.DB
}

// NewPostgreSQLUserRepository creates a new PostgreSQLUserRepository.
func NewPostgreSQLUserRepository(db *sql.DB) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{db: db}
}

// Create inserts a new user into the database.
func (r *PostgreSQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO users (cpf, name, email, password_hash, role, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := querier.ExecContext(
		ctx,
		query,
		user.CPF,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// GetByCPF retrieves a user by CPF. The password hash is not selected.
func (r *PostgreSQLUserRepository) GetByCPF(ctx context.Context, cpf string) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT cpf, name, email, role, created_at, updated_at FROM users WHERE cpf = $1`

	var user domain.User
	err := querier.QueryRowContext(ctx, query, cpf).Scan(
		&user.CPF,
		&user.Name,
		&user.Email,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user")
	}
	return &user, nil
}

// GetByCPFWithPassword retrieves a user by CPF including the password hash.
// Only the authentication flow may use this lookup.
func (r *PostgreSQLUserRepository) GetByCPFWithPassword(ctx context.Context, cpf string) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT cpf, name, email, password_hash, role, created_at, updated_at
			  FROM users WHERE cpf = $1`

	var user domain.User
	err := querier.QueryRowContext(ctx, query, cpf).Scan(
		&user.CPF,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user with password")
	}
	return &user, nil
}

// List retrieves all users ordered by name. Password hashes are not selected.
func (r *PostgreSQLUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT cpf, name, email, role, created_at, updated_at FROM users ORDER BY name`

	return r.queryUsers(ctx, querier, query)
}

// SearchByName retrieves users whose name contains the given fragment.
func (r *PostgreSQLUserRepository) SearchByName(ctx context.Context, name string) ([]*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT cpf, name, email, role, created_at, updated_at
			  FROM users WHERE name ILIKE '%' || $1 || '%' ORDER BY name`

	return r.queryUsers(ctx, querier, query, name)
}

// Update modifies an existing user.
func (r *PostgreSQLUserRepository) Update(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE users
			  SET name = $1, email = $2, password_hash = $3, role = $4, updated_at = $5
			  WHERE cpf = $6`

	result, err := querier.ExecContext(
		ctx,
		query,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.UpdatedAt,
		user.CPF,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update user")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check update result")
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete removes a user by CPF.
func (r *PostgreSQLUserRepository) Delete(ctx context.Context, cpf string) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM users WHERE cpf = $1`, cpf)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete user")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to check delete result")
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Count returns the total number of users. Used by the bootstrap rule that
// lets the very first user be created without a token.
func (r *PostgreSQLUserRepository) Count(ctx context.Context) (int64, error) {
	querier := database.GetTx(ctx, r.db)

	var count int64
	err := querier.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to count users")
	}
	return count, nil
}

// CountAdmins returns the number of users carrying the administrator role.
// Used by the rule that refuses to delete the last administrator.
func (r *PostgreSQLUserRepository) CountAdmins(ctx context.Context) (int64, error) {
	querier := database.GetTx(ctx, r.db)

	var count int64
	err := querier.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE role = $1`, domain.RoleAdmin,
	).Scan(&count)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to count administrators")
	}
	return count, nil
}

// queryUsers runs a multi-row user query and scans the results.
func (r *PostgreSQLUserRepository) queryUsers(
	ctx context.Context,
	querier database.Querier,
	query string,
	args ...any,
) ([]*domain.User, error) {
	rows, err := querier.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to query users")
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.CPF,
			&user.Name,
			&user.Email,
			&user.Role,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan user")
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate users")
	}
	return users, nil
}
