package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fiscalhub/fiscalhub/internal/auth/http/dto"
	"github.com/fiscalhub/fiscalhub/internal/auth/usecase"
	apperrors "github.com/fiscalhub/fiscalhub/internal/errors"
	"github.com/fiscalhub/fiscalhub/internal/httputil"
)

// AuthHandler handles HTTP requests for sign-in and sign-out.
type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	logger      *slog.Logger
}

// NewAuthHandler creates a new authentication handler.
func NewAuthHandler(authUseCase usecase.AuthUseCase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// LoginHandler authenticates a CPF and password pair.
// POST /v1/auth/login - Public, IP rate limited.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	session, err := h.authUseCase.SignIn(c.Request.Context(), req.CPF, req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSessionToResponse(session))
}

// LogoutHandler revokes the caller's access token.
// POST /v1/auth/logout - Requires the token being revoked in the
// Authorization header. Revoking an already revoked token succeeds.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	if err := h.authUseCase.SignOut(c.Request.Context(), token); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	const prefix = "bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
