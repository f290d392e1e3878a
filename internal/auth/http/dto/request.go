// Package dto defines request and response structures for authentication endpoints.
package dto

import (
	"github.com/jellydator/validation"

	customValidation "github.com/fiscalhub/fiscalhub/internal/validation"
)

// SignInRequest represents a sign-in request body. The CPF is only
// checked for presence here; its shape is enforced by the sign-in flow
// and the stored value is authoritative.
type SignInRequest struct {
	CPF      string `json:"cpf"`
	Password string `json:"password"`
}

// Validate validates the sign-in request fields.
func (r SignInRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.CPF, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
	return customValidation.WrapValidationError(err)
}
