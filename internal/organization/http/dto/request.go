// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/fiscalhub/fiscalhub/internal/validation"
)

// CreateOrganizationRequest contains the parameters for registering an organization.
type CreateOrganizationRequest struct {
	CNPJ                     string `json:"cnpj" binding:"required"`
	MunicipalRegistration    string `json:"municipal_registration"`
	Name                     string `json:"name" binding:"required"`
	SimplesNacional          string `json:"simples_nacional" binding:"required"`
	MEI                      string `json:"mei"`
	IntegrationEnvironmentID *int64 `json:"integration_environment_id"`
}

// Validate checks if the create organization request is valid.
func (r *CreateOrganizationRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.CNPJ, validation.Required, customValidation.CNPJ),
		validation.Field(&r.Name, validation.Required, customValidation.NotBlank, validation.Length(1, 300)),
		validation.Field(&r.MunicipalRegistration, validation.Length(0, 50)),
		validation.Field(&r.SimplesNacional, validation.Required, validation.Length(1, 2)),
		validation.Field(&r.MEI, validation.Length(0, 2)),
	)
}

// UpdateOrganizationRequest contains the parameters for updating an organization.
// Nil fields keep their current values.
type UpdateOrganizationRequest struct {
	MunicipalRegistration    *string `json:"municipal_registration"`
	Name                     *string `json:"name"`
	SimplesNacional          *string `json:"simples_nacional"`
	MEI                      *string `json:"mei"`
	IntegrationEnvironmentID *int64  `json:"integration_environment_id"`
}

// Validate checks if the update organization request is valid.
func (r *UpdateOrganizationRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Length(1, 300)),
		validation.Field(&r.MunicipalRegistration, validation.Length(0, 50)),
		validation.Field(&r.SimplesNacional, validation.Length(1, 2)),
		validation.Field(&r.MEI, validation.Length(1, 2)),
	)
}
