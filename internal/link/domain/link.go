// Package domain defines the core entities for user-organization links.
package domain

import (
	"strings"
	"time"

	apperrors "github.com/fiscalhub/fiscalhub/internal/errors"
)

// Link status values. Stored in CHAR columns, so comparisons trim padding.
const (
	StatusActive   = "1"
	StatusInactive = "0"
)

// Link associates a user with an organization, carrying the permission code
// granted and the link status.
type Link struct {
	CPF            string
	CNPJ           string
	PermissionCode string
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsActive reports whether the link grants access.
func (l *Link) IsActive() bool {
	return strings.TrimSpace(l.Status) == StatusActive
}

// Domain errors for link operations.
var (
	ErrLinkNotFound      = apperrors.Wrap(apperrors.ErrNotFound, "link not found")
	ErrLinkAlreadyExists = apperrors.Wrap(apperrors.ErrConflict, "link already exists")
	ErrInvalidCPF        = apperrors.Wrap(apperrors.ErrInvalidInput, "invalid CPF")
	ErrInvalidCNPJ       = apperrors.Wrap(apperrors.ErrInvalidInput, "invalid CNPJ")
)
