package app

import (
	"fmt"

	organizationHTTP "github.com/fiscalhub/fiscalhub/internal/organization/http"
	organizationRepository "github.com/fiscalhub/fiscalhub/internal/organization/repository"
	organizationUseCase "github.com/fiscalhub/fiscalhub/internal/organization/usecase"
)

// OrganizationRepository returns the organization repository based on the
// database driver.
func (c *Container) OrganizationRepository() (organizationUseCase.OrganizationRepository, error) {
	var err error
	c.organizationRepoInit.Do(func() {
		c.organizationRepo, err = c.initOrganizationRepository()
		if err != nil {
			c.initErrors["organizationRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["organizationRepo"]; exists {
		return nil, storedErr
	}
	return c.organizationRepo, nil
}

// OrganizationUseCase returns the organization use case.
func (c *Container) OrganizationUseCase() (organizationUseCase.OrganizationUseCase, error) {
	var err error
	c.organizationUseCaseInit.Do(func() {
		c.organizationUseCase, err = c.initOrganizationUseCase()
		if err != nil {
			c.initErrors["organizationUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["organizationUseCase"]; exists {
		return nil, storedErr
	}
	return c.organizationUseCase, nil
}

// OrganizationHandler returns the HTTP handler for organization operations.
func (c *Container) OrganizationHandler() (*organizationHTTP.OrganizationHandler, error) {
	var err error
	c.organizationHandlerInit.Do(func() {
		c.organizationHandler, err = c.initOrganizationHandler()
		if err != nil {
			c.initErrors["organizationHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["organizationHandler"]; exists {
		return nil, storedErr
	}
	return c.organizationHandler, nil
}

// initOrganizationRepository creates the organization repository based on
// the database driver.
func (c *Container) initOrganizationRepository() (organizationUseCase.OrganizationRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for organization repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return organizationRepository.NewMySQLOrganizationRepository(db), nil
	case "postgres":
		return organizationRepository.NewPostgreSQLOrganizationRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initOrganizationUseCase creates the organization use case with all its
// dependencies.
func (c *Container) initOrganizationUseCase() (organizationUseCase.OrganizationUseCase, error) {
	orgRepo, err := c.OrganizationRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get organization repository for organization use case: %w", err)
	}

	cipher, err := c.Cipher()
	if err != nil {
		return nil, fmt.Errorf("failed to get cipher for organization use case: %w", err)
	}

	baseUseCase := organizationUseCase.NewOrganizationUseCase(orgRepo, cipher)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for organization use case: %w", err)
		}
		return organizationUseCase.NewOrganizationUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initOrganizationHandler creates the organization handler.
func (c *Container) initOrganizationHandler() (*organizationHTTP.OrganizationHandler, error) {
	orgUC, err := c.OrganizationUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get organization use case for organization handler: %w", err)
	}

	return organizationHTTP.NewOrganizationHandler(orgUC, c.Logger()), nil
}
