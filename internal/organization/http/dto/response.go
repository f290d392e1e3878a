package dto

import (
	"time"

	"github.com/fiscalhub/fiscalhub/internal/organization/domain"
)

// OrganizationResponse represents an organization in API responses. The
// certificate blob and passphrase are never included.
type OrganizationResponse struct {
	CNPJ                     string     `json:"cnpj"`
	MunicipalRegistration    string     `json:"municipal_registration,omitempty"`
	Name                     string     `json:"name"`
	SimplesNacional          string     `json:"simples_nacional"`
	MEI                      string     `json:"mei,omitempty"`
	IntegrationEnvironmentID *int64     `json:"integration_environment_id,omitempty"`
	CertUploadedAt           *time.Time `json:"cert_uploaded_at,omitempty"`
	CreatedAt                time.Time  `json:"created_at"`
	UpdatedAt                time.Time  `json:"updated_at"`
}

// ListOrganizationsResponse wraps a collection of organizations.
type ListOrganizationsResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
}

// CertificateStatusResponse reports certificate presence without the blob.
type CertificateStatusResponse struct {
	CNPJ           string     `json:"cnpj"`
	HasCertificate bool       `json:"has_certificate"`
	UploadedAt     *time.Time `json:"uploaded_at,omitempty"`
}

// CertificateInfoResponse summarizes the stored certificate.
type CertificateInfoResponse struct {
	Subject      string    `json:"subject"`
	Issuer       string    `json:"issuer"`
	SerialNumber string    `json:"serial_number"`
	NotBefore    time.Time `json:"not_before"`
	NotAfter     time.Time `json:"not_after"`
	Expired      bool      `json:"expired"`
}

// MapOrganizationToResponse converts a domain organization to an API response.
func MapOrganizationToResponse(org *domain.Organization) OrganizationResponse {
	return OrganizationResponse{
		CNPJ:                     org.CNPJ,
		MunicipalRegistration:    org.MunicipalRegistration,
		Name:                     org.Name,
		SimplesNacional:          org.SimplesNacional,
		MEI:                      org.MEI,
		IntegrationEnvironmentID: org.IntegrationEnvironmentID,
		CertUploadedAt:           org.CertUploadedAt,
		CreatedAt:                org.CreatedAt,
		UpdatedAt:                org.UpdatedAt,
	}
}

// MapOrganizationsToListResponse converts domain organizations to a list API response.
func MapOrganizationsToListResponse(orgs []*domain.Organization) ListOrganizationsResponse {
	out := ListOrganizationsResponse{Organizations: make([]OrganizationResponse, 0, len(orgs))}
	for _, org := range orgs {
		out.Organizations = append(out.Organizations, MapOrganizationToResponse(org))
	}
	return out
}

// MapCertificateStatusToResponse converts a certificate status to an API response.
func MapCertificateStatusToResponse(status *domain.CertificateStatus) CertificateStatusResponse {
	return CertificateStatusResponse{
		CNPJ:           status.CNPJ,
		HasCertificate: status.HasCertificate,
		UploadedAt:     status.UploadedAt,
	}
}

// MapCertificateInfoToResponse converts certificate info to an API response.
func MapCertificateInfoToResponse(info *domain.CertificateInfo) CertificateInfoResponse {
	return CertificateInfoResponse{
		Subject:      info.Subject,
		Issuer:       info.Issuer,
		SerialNumber: info.SerialNumber,
		NotBefore:    info.NotBefore,
		NotAfter:     info.NotAfter,
		Expired:      info.Expired,
	}
}
