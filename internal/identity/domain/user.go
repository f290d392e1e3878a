// Package domain defines the core user domain entities and types.
package domain

import (
	"strings"
	"time"

	apperrors "github.com/fiscalhub/fiscalhub/internal/errors"
)

// Role codes stored on the user record. The set is closed: "1" marks an
// administrator, every other code is a standard user.
const (
	// RoleAdmin is the role code for administrators. Administrators may
	// sign in without any organization link.
	RoleAdmin = "1"

	// RoleStandard is the role code for regular users, who need at least
	// one active organization link to sign in.
	RoleStandard = "2"
)

// User represents an authenticable account, identified by CPF.
// PasswordHash is only populated by lookups that explicitly select it;
// it must never leave the repository boundary in API responses.
type User struct {
	CPF          string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user carries the administrator role code.
// The stored code is trimmed first; legacy rows carry CHAR-padded values.
func (u *User) IsAdmin() bool {
	return strings.TrimSpace(u.Role) == RoleAdmin
}

// Domain-specific errors for user operations.
var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = apperrors.Wrap(apperrors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates a user with the same CPF already exists.
	ErrUserAlreadyExists = apperrors.Wrap(apperrors.ErrConflict, "user already exists")

	// ErrInvalidCPF indicates the CPF failed check-digit validation.
	ErrInvalidCPF = apperrors.Wrap(apperrors.ErrInvalidInput, "invalid CPF")

	// ErrLastAdmin indicates a delete would remove the only remaining
	// administrator, leaving no account able to manage users.
	ErrLastAdmin = apperrors.Wrap(apperrors.ErrConflict, "cannot delete the last administrator")
)
