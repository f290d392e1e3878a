// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/fiscalhub/fiscalhub/internal/validation"
)

// CreateLinkRequest contains the parameters for linking a user to an organization.
type CreateLinkRequest struct {
	CPF            string `json:"cpf" binding:"required"`
	CNPJ           string `json:"cnpj" binding:"required"`
	PermissionCode string `json:"permission_code" binding:"required"`
	Status         string `json:"status"`
}

// Validate checks if the create link request is valid.
func (r *CreateLinkRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.CPF, validation.Required, customValidation.CPF),
		validation.Field(&r.CNPJ, validation.Required, customValidation.CNPJ),
		validation.Field(&r.PermissionCode, validation.Required, validation.Length(1, 2)),
		validation.Field(&r.Status, validation.Length(1, 2)),
	)
}

// UpdateLinkRequest contains the parameters for updating a link.
type UpdateLinkRequest struct {
	PermissionCode string `json:"permission_code"`
	Status         string `json:"status"`
}

// Validate checks if the update link request is valid.
func (r *UpdateLinkRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.PermissionCode, validation.Length(1, 2)),
		validation.Field(&r.Status, validation.Length(1, 2)),
	)
}
