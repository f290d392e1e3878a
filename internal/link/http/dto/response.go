package dto

import (
	"time"

	"github.com/fiscalhub/fiscalhub/internal/link/domain"
)

// LinkResponse represents a user-organization link in API responses.
type LinkResponse struct {
	CPF            string    `json:"cpf"`
	CNPJ           string    `json:"cnpj"`
	PermissionCode string    `json:"permission_code"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ListLinksResponse wraps a collection of links.
type ListLinksResponse struct {
	Links []LinkResponse `json:"links"`
}

// MapLinkToResponse converts a domain link to an API response.
func MapLinkToResponse(link *domain.Link) LinkResponse {
	return LinkResponse{
		CPF:            link.CPF,
		CNPJ:           link.CNPJ,
		PermissionCode: link.PermissionCode,
		Status:         link.Status,
		CreatedAt:      link.CreatedAt,
		UpdatedAt:      link.UpdatedAt,
	}
}

// MapLinksToListResponse converts domain links to a list API response.
func MapLinksToListResponse(links []*domain.Link) ListLinksResponse {
	out := ListLinksResponse{Links: make([]LinkResponse, 0, len(links))}
	for _, link := range links {
		out.Links = append(out.Links, MapLinkToResponse(link))
	}
	return out
}
