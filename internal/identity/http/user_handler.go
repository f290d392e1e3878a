// Package http provides HTTP handlers for user account management.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fiscalhub/fiscalhub/internal/httputil"
	"github.com/fiscalhub/fiscalhub/internal/identity/http/dto"
	"github.com/fiscalhub/fiscalhub/internal/identity/usecase"
	customValidation "github.com/fiscalhub/fiscalhub/internal/validation"
)

// TokenValidator reports whether a bearer token is valid and its subject still
// allowed access. It decouples user management from the authentication flow so
// the first account can be created before any token exists.
type TokenValidator interface {
	CheckToken(ctx context.Context, token string) error
}

// UserHandler handles HTTP requests for user account operations.
type UserHandler struct {
	userUseCase    usecase.UserUseCase
	tokenValidator TokenValidator
	logger         *slog.Logger
}

// NewUserHandler creates a new user handler with required dependencies.
func NewUserHandler(
	userUseCase usecase.UserUseCase,
	tokenValidator TokenValidator,
	logger *slog.Logger,
) *UserHandler {
	return &UserHandler{
		userUseCase:    userUseCase,
		tokenValidator: tokenValidator,
		logger:         logger,
	}
}

// CreateHandler creates a new user account.
// POST /v1/users - Public only while no accounts exist (bootstrap). Once the
// first account is created the endpoint requires a valid bearer token.
func (h *UserHandler) CreateHandler(c *gin.Context) {
	hasUsers, err := h.userUseCase.HasUsers(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	if hasUsers {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, httputil.ErrorResponse{
				Error:   "unauthorized",
				Message: "authentication required",
			})
			return
		}
		if err := h.tokenValidator.CheckToken(c.Request.Context(), token); err != nil {
			httputil.HandleErrorGin(c, err, h.logger)
			return
		}
	}

	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	user, err := h.userUseCase.Create(c.Request.Context(), usecase.CreateUserInput{
		CPF:      req.CPF,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapUserToResponse(user))
}

// GetHandler retrieves a user account by CPF.
// GET /v1/users/:cpf
func (h *UserHandler) GetHandler(c *gin.Context) {
	user, err := h.userUseCase.Get(c.Request.Context(), c.Param("cpf"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapUserToResponse(user))
}

// ListHandler retrieves all user accounts, optionally filtered by name.
// GET /v1/users?name=fragment
func (h *UserHandler) ListHandler(c *gin.Context) {
	name := c.Query("name")
	if name != "" {
		result, err := h.userUseCase.SearchByName(c.Request.Context(), name)
		if err != nil {
			httputil.HandleErrorGin(c, err, h.logger)
			return
		}
		c.JSON(http.StatusOK, dto.MapUsersToListResponse(result))
		return
	}

	result, err := h.userUseCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapUsersToListResponse(result))
}

// UpdateHandler modifies an existing user account.
// PUT /v1/users/:cpf
func (h *UserHandler) UpdateHandler(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	user, err := h.userUseCase.Update(c.Request.Context(), c.Param("cpf"), usecase.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToResponse(user))
}

// DeleteHandler removes a user account.
// DELETE /v1/users/:cpf
func (h *UserHandler) DeleteHandler(c *gin.Context) {
	if err := h.userUseCase.Delete(c.Request.Context(), c.Param("cpf")); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.Status(http.StatusNoContent)
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
