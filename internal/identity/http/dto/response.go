package dto

import (
	"time"

	"github.com/fiscalhub/fiscalhub/internal/identity/domain"
)

// UserResponse represents a user account in API responses. Password hashes
// are never included.
type UserResponse struct {
	CPF       string    `json:"cpf"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListUsersResponse wraps a collection of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// MapUserToResponse converts a domain user to an API response.
func MapUserToResponse(user *domain.User) UserResponse {
	return UserResponse{
		CPF:       user.CPF,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// MapUsersToListResponse converts domain users to a list API response.
func MapUsersToListResponse(users []*domain.User) ListUsersResponse {
	out := ListUsersResponse{Users: make([]UserResponse, 0, len(users))}
	for _, user := range users {
		out.Users = append(out.Users, MapUserToResponse(user))
	}
	return out
}
