package dto

import (
	identitydto "github.com/fiscalhub/fiscalhub/internal/identity/http/dto"
	linkdto "github.com/fiscalhub/fiscalhub/internal/link/http/dto"

	"github.com/fiscalhub/fiscalhub/internal/auth/usecase"
)

// SignInResponse is the body returned after a successful sign-in.
type SignInResponse struct {
	AccessToken string                   `json:"access_token"`
	TokenType   string                   `json:"token_type"`
	ExpiresIn   int64                    `json:"expires_in"`
	User        identitydto.UserResponse `json:"user"`
	Links       []linkdto.LinkResponse   `json:"links"`
}

// MapSessionToResponse converts a sign-in session to an API response.
func MapSessionToResponse(session *usecase.Session) SignInResponse {
	links := make([]linkdto.LinkResponse, 0, len(session.Links))
	for _, link := range session.Links {
		links = append(links, linkdto.MapLinkToResponse(link))
	}
	return SignInResponse{
		AccessToken: session.AccessToken,
		TokenType:   session.TokenType,
		ExpiresIn:   session.ExpiresIn,
		User:        identitydto.MapUserToResponse(session.User),
		Links:       links,
	}
}
