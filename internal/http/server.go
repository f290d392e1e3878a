// Package http provides the API HTTP server, router and shared middleware.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/fiscalhub/fiscalhub/internal/auth/http"
	authUsecase "github.com/fiscalhub/fiscalhub/internal/auth/usecase"
	"github.com/fiscalhub/fiscalhub/internal/config"
	identityHTTP "github.com/fiscalhub/fiscalhub/internal/identity/http"
	linkHTTP "github.com/fiscalhub/fiscalhub/internal/link/http"
	organizationHTTP "github.com/fiscalhub/fiscalhub/internal/organization/http"
)

// Handlers groups the feature handlers mounted on the API router.
type Handlers struct {
	Auth         *authHTTP.AuthHandler
	User         *identityHTTP.UserHandler
	Organization *organizationHTTP.OrganizationHandler
	Link         *linkHTTP.LinkHandler
}

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	db     *sql.DB
	logger *slog.Logger
	router *gin.Engine
}

// NewServer creates the API server and mounts all routes.
// metricsMiddleware may be nil when metrics are disabled.
func NewServer(
	cfg *config.Config,
	db *sql.DB,
	logger *slog.Logger,
	handlers Handlers,
	authUseCase authUsecase.AuthUseCase,
	metricsMiddleware gin.HandlerFunc,
) *Server {
	s := &Server{
		db:     db,
		logger: logger,
	}
	s.router = s.setupRouter(cfg, handlers, authUseCase, metricsMiddleware)
	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// setupRouter builds the Gin engine with middleware and all routes.
func (s *Server) setupRouter(
	cfg *config.Config,
	handlers Handlers,
	authUseCase authUsecase.AuthUseCase,
	metricsMiddleware gin.HandlerFunc,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}
	if metricsMiddleware != nil {
		router.Use(metricsMiddleware)
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	// Public routes. Sign-in is IP rate limited; sign-out validates the
	// token itself so revoking an expired token still succeeds; user
	// creation enforces its own bootstrap rule.
	public := router.Group("/v1")
	{
		login := public.Group("/auth")
		if cfg.RateLimitLoginEnabled {
			login.Use(authHTTP.LoginRateLimitMiddleware(
				cfg.RateLimitLoginRequestsPerSec,
				cfg.RateLimitLoginBurst,
				s.logger,
			))
		}
		login.POST("/login", handlers.Auth.LoginHandler)

		public.POST("/auth/logout", handlers.Auth.LogoutHandler)
		public.POST("/users", handlers.User.CreateHandler)
	}

	// Protected routes require a valid, unrevoked bearer token whose
	// subject still passes the access policy.
	protected := router.Group("/v1")
	protected.Use(authHTTP.AuthenticationMiddleware(authUseCase, s.logger))
	{
		protected.GET("/users", handlers.User.ListHandler)
		protected.GET("/users/:cpf", handlers.User.GetHandler)
		protected.PATCH("/users/:cpf", handlers.User.UpdateHandler)
		protected.DELETE("/users/:cpf", handlers.User.DeleteHandler)

		protected.POST("/organizations", handlers.Organization.CreateHandler)
		protected.GET("/organizations", handlers.Organization.ListHandler)
		protected.GET("/organizations/:cnpj", handlers.Organization.GetHandler)
		protected.PATCH("/organizations/:cnpj", handlers.Organization.UpdateHandler)
		protected.DELETE("/organizations/:cnpj", handlers.Organization.DeleteHandler)
		protected.POST("/organizations/:cnpj/certificate", handlers.Organization.UploadCertificateHandler)
		protected.GET("/organizations/:cnpj/certificate", handlers.Organization.CertificateStatusHandler)
		protected.GET("/organizations/:cnpj/certificate/info", handlers.Organization.CertificateInfoHandler)
		protected.DELETE("/organizations/:cnpj/certificate", handlers.Organization.RemoveCertificateHandler)

		protected.POST("/links", handlers.Link.CreateHandler)
		protected.GET("/links", handlers.Link.ListHandler)
		protected.GET("/links/user/:cpf", handlers.Link.ListByCPFHandler)
		protected.GET("/links/organization/:cnpj", handlers.Link.ListByCNPJHandler)
		protected.PATCH("/links/:cpf/:cnpj", handlers.Link.UpdateHandler)
		protected.DELETE("/links/:cpf/:cnpj", handlers.Link.DeleteHandler)
	}

	return router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can take traffic.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{"database": "ok"}

	if s.db == nil {
		components["database"] = "error"
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.db.PingContext(ctx); err != nil {
			components["database"] = "error"
		}
	}

	if components["database"] != "ok" {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the API HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the API HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
