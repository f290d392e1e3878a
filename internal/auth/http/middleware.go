// Package http provides HTTP handlers and middleware for authentication.
package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fiscalhub/fiscalhub/internal/auth/usecase"
	apperrors "github.com/fiscalhub/fiscalhub/internal/errors"
	"github.com/fiscalhub/fiscalhub/internal/httputil"
)

// AuthenticationMiddleware protects routes with Bearer token authentication.
//
// The middleware extracts the Bearer token from the Authorization header
// (case-insensitive "bearer"), validates it against the revocation list,
// signature, age ceiling and current access policy, and stores the
// authenticated identity in the request context for downstream handlers.
//
// Error handling:
//   - Missing or malformed Authorization header → 401 Unauthorized
//   - Invalid/expired/revoked token → 401 Unauthorized
//   - Valid token but access policy fails → 403 Forbidden
func AuthenticationMiddleware(authUseCase usecase.AuthUseCase, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug("authentication failed: missing authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("authentication failed: malformed authorization header")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		token := strings.TrimSpace(authHeader[len(bearerPrefix):])
		if token == "" {
			logger.Debug("authentication failed: empty bearer token")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		identity, err := authUseCase.ValidateToken(c.Request.Context(), token)
		if err != nil {
			logger.Debug("authentication failed", slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		ctx := WithIdentity(c.Request.Context(), identity)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
