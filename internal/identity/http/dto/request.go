// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/fiscalhub/fiscalhub/internal/identity/domain"
	customValidation "github.com/fiscalhub/fiscalhub/internal/validation"
)

// CreateUserRequest contains the parameters for creating a user account.
type CreateUserRequest struct {
	CPF      string `json:"cpf" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// Validate checks if the create user request is valid.
func (r *CreateUserRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.CPF, validation.Required, customValidation.CPF),
		validation.Field(&r.Name, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Email, customValidation.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 72)),
		validation.Field(&r.Role, validation.In(domain.RoleAdmin, domain.RoleStandard)),
	)
}

// UpdateUserRequest contains the parameters for updating a user account.
// All fields are optional; empty fields keep their current values.
type UpdateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Validate checks if the update user request is valid.
func (r *UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email, customValidation.Email),
		validation.Field(&r.Password, validation.Length(8, 72)),
		validation.Field(&r.Role, validation.In(domain.RoleAdmin, domain.RoleStandard)),
	)
}
