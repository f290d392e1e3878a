package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fiscalhub/fiscalhub/internal/database"
	apperrors "github.com/fiscalhub/fiscalhub/internal/errors"
	"github.com/fiscalhub/fiscalhub/internal/identity/domain"
)

// MySQLUserRepository implements user persistence for MySQL.
type MySQLUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new MySQLUserRepository.
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}

// Create inserts a new user into the database.
func (r *MySQLUserRepository) Create(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO users (cpf, name, email, password_hash, role, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`

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
func (r *MySQLUserRepository) GetByCPF(ctx context.Context, cpf string) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT cpf, name, email, role, created_at, updated_at FROM users WHERE cpf = ?`

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
func (r *MySQLUserRepository) GetByCPFWithPassword(ctx context.Context, cpf string) (*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT cpf, name, email, password_hash, role, created_at, updated_at
			  FROM users WHERE cpf = ?`

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
func (r *MySQLUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT cpf, name, email, role, created_at, updated_at FROM users ORDER BY name`

	return r.queryUsers(ctx, querier, query)
}

// SearchByName retrieves users whose name contains the given fragment.
func (r *MySQLUserRepository) SearchByName(ctx context.Context, name string) ([]*domain.User, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT cpf, name, email, role, created_at, updated_at
			  FROM users WHERE name LIKE CONCAT('%', ?, '%') ORDER BY name`

	return r.queryUsers(ctx, querier, query, name)
}

// Update modifies an existing user.
func (r *MySQLUserRepository) Update(ctx context.Context, user *domain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE users
			  SET name = ?, email = ?, password_hash = ?, role = ?, updated_at = ?
			  WHERE cpf = ?`

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
func (r *MySQLUserRepository) Delete(ctx context.Context, cpf string) error {
	querier := database.GetTx(ctx, r.db)

	result, err := querier.ExecContext(ctx, `DELETE FROM users WHERE cpf = ?`, cpf)
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

// Count returns the total number of users.
func (r *MySQLUserRepository) Count(ctx context.Context) (int64, error) {
	querier := database.GetTx(ctx, r.db)

	var count int64
	err := querier.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to count users")
	}
	return count, nil
}

// CountAdmins returns the number of users carrying the administrator role.
func (r *MySQLUserRepository) CountAdmins(ctx context.Context) (int64, error) {
	querier := database.GetTx(ctx, r.db)

	var count int64
	err := querier.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE role = ?`, domain.RoleAdmin,
	).Scan(&count)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to count administrators")
	}
	return count, nil
}

func (r *MySQLUserRepository) queryUsers(
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
