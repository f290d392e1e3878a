package app

import (
	"fmt"

	authHTTP "github.com/fiscalhub/fiscalhub/internal/auth/http"
	authService "github.com/fiscalhub/fiscalhub/internal/auth/service"
	authUseCase "github.com/fiscalhub/fiscalhub/internal/auth/usecase"
	identityRepository "github.com/fiscalhub/fiscalhub/internal/identity/repository"
	linkRepository "github.com/fiscalhub/fiscalhub/internal/link/repository"
)

// RevocationStore returns the token revocation store.
func (c *Container) RevocationStore() authService.RevocationStore {
	c.revocationStoreInit.Do(func() {
		c.revocationStore = authService.NewMemoryRevocationStore(c.Logger())
	})
	return c.revocationStore
}

// TokenService returns the access token service.
func (c *Container) TokenService() (authService.TokenService, error) {
	var err error
	c.tokenServiceInit.Do(func() {
		c.tokenService, err = c.initTokenService()
		if err != nil {
			c.initErrors["tokenService"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenService"]; exists {
		return nil, storedErr
	}
	return c.tokenService, nil
}

// LoginAttemptLimiter returns the sign-in lockout limiter.
func (c *Container) LoginAttemptLimiter() *authService.LoginAttemptLimiter {
	c.loginLimiterInit.Do(func() {
		c.loginLimiter = authService.NewLoginAttemptLimiter(
			c.config.LockoutMaxAttempts,
			c.config.LockoutDuration,
		)
	})
	return c.loginLimiter
}

// AuthUseCase returns the authentication use case.
func (c *Container) AuthUseCase() (authUseCase.AuthUseCase, error) {
	var err error
	c.authUseCaseInit.Do(func() {
		c.authUseCase, err = c.initAuthUseCase()
		if err != nil {
			c.initErrors["authUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authUseCase"]; exists {
		return nil, storedErr
	}
	return c.authUseCase, nil
}

// AuthHandler returns the HTTP handler for authentication operations.
func (c *Container) AuthHandler() (*authHTTP.AuthHandler, error) {
	var err error
	c.authHandlerInit.Do(func() {
		c.authHandler, err = c.initAuthHandler()
		if err != nil {
			c.initErrors["authHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authHandler"]; exists {
		return nil, storedErr
	}
	return c.authHandler, nil
}

// initTokenService creates the token service from configuration.
func (c *Container) initTokenService() (authService.TokenService, error) {
	return authService.NewTokenService(
		c.config.JWTSecret,
		c.config.TokenExpiration,
		c.config.TokenMaxAge,
		c.RevocationStore(),
	)
}

// initAuthUseCase creates the authentication use case with all its
// dependencies. The user and link repositories are created directly here
// because the auth flows only consume narrow read interfaces.
func (c *Container) initAuthUseCase() (authUseCase.AuthUseCase, error) {
	tokens, err := c.TokenService()
	if err != nil {
		return nil, fmt.Errorf("failed to get token service for auth use case: %w", err)
	}

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for auth use case: %w", err)
	}

	var userRepo authUseCase.UserRepository
	var linkRepo authUseCase.LinkRepository
	switch c.config.DBDriver {
	case "mysql":
		userRepo = identityRepository.NewMySQLUserRepository(db)
		linkRepo = linkRepository.NewMySQLLinkRepository(db)
	case "postgres":
		userRepo = identityRepository.NewPostgreSQLUserRepository(db)
		linkRepo = linkRepository.NewPostgreSQLLinkRepository(db)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}

	baseUseCase := authUseCase.NewAuthUseCase(
		tokens,
		c.LoginAttemptLimiter(),
		userRepo,
		linkRepo,
		c.Logger(),
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for auth use case: %w", err)
		}
		return authUseCase.NewAuthUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initAuthHandler creates the authentication handler.
func (c *Container) initAuthHandler() (*authHTTP.AuthHandler, error) {
	authUC, err := c.AuthUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth use case for auth handler: %w", err)
	}

	return authHTTP.NewAuthHandler(authUC, c.Logger()), nil
}
