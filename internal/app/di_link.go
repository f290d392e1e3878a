package app

import (
	"fmt"

	linkHTTP "github.com/fiscalhub/fiscalhub/internal/link/http"
	linkRepository "github.com/fiscalhub/fiscalhub/internal/link/repository"
	linkUseCase "github.com/fiscalhub/fiscalhub/internal/link/usecase"
)

// LinkRepository returns the link repository based on the database driver.
func (c *Container) LinkRepository() (linkUseCase.LinkRepository, error) {
	var err error
	c.linkRepoInit.Do(func() {
		c.linkRepo, err = c.initLinkRepository()
		if err != nil {
			c.initErrors["linkRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["linkRepo"]; exists {
		return nil, storedErr
	}
	return c.linkRepo, nil
}

// LinkUseCase returns the link use case.
func (c *Container) LinkUseCase() (linkUseCase.LinkUseCase, error) {
	var err error
	c.linkUseCaseInit.Do(func() {
		c.linkUseCase, err = c.initLinkUseCase()
		if err != nil {
			c.initErrors["linkUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["linkUseCase"]; exists {
		return nil, storedErr
	}
	return c.linkUseCase, nil
}

// LinkHandler returns the HTTP handler for link operations.
func (c *Container) LinkHandler() (*linkHTTP.LinkHandler, error) {
	var err error
	c.linkHandlerInit.Do(func() {
		c.linkHandler, err = c.initLinkHandler()
		if err != nil {
			c.initErrors["linkHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["linkHandler"]; exists {
		return nil, storedErr
	}
	return c.linkHandler, nil
}

// initLinkRepository creates the link repository based on the database driver.
func (c *Container) initLinkRepository() (linkUseCase.LinkRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for link repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return linkRepository.NewMySQLLinkRepository(db), nil
	case "postgres":
		return linkRepository.NewPostgreSQLLinkRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initLinkUseCase creates the link use case with all its dependencies.
func (c *Container) initLinkUseCase() (linkUseCase.LinkUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for link use case: %w", err)
	}

	linkRepo, err := c.LinkRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get link repository for link use case: %w", err)
	}

	baseUseCase := linkUseCase.NewLinkUseCase(txManager, linkRepo)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for link use case: %w", err)
		}
		return linkUseCase.NewLinkUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initLinkHandler creates the link handler.
func (c *Container) initLinkHandler() (*linkHTTP.LinkHandler, error) {
	linkUC, err := c.LinkUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get link use case for link handler: %w", err)
	}

	return linkHTTP.NewLinkHandler(linkUC, c.Logger()), nil
}
