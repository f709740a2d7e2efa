package app

import (
	"fmt"

	servicesHTTP "github.com/pcoetsee/settings-service/internal/services/http"
	servicesRepository "github.com/pcoetsee/settings-service/internal/services/repository"
	servicesUseCase "github.com/pcoetsee/settings-service/internal/services/usecase"
)

// ServiceRepository returns the service repository based on database driver.
func (c *Container) ServiceRepository() (servicesUseCase.ServiceRepository, error) {
	var err error
	c.serviceRepositoryInit.Do(func() {
		c.serviceRepository, err = c.initServiceRepository()
		if err != nil {
			c.initErrors["serviceRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["serviceRepository"]; exists {
		return nil, storedErr
	}
	return c.serviceRepository, nil
}

// ServiceUseCase returns the service use case.
func (c *Container) ServiceUseCase() (servicesUseCase.ServiceUseCase, error) {
	var err error
	c.serviceUseCaseInit.Do(func() {
		c.serviceUseCase, err = c.initServiceUseCase()
		if err != nil {
			c.initErrors["serviceUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["serviceUseCase"]; exists {
		return nil, storedErr
	}
	return c.serviceUseCase, nil
}

// AuthUseCase returns the authentication use case.
func (c *Container) AuthUseCase() (servicesUseCase.AuthUseCase, error) {
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

// ServiceHandler returns the HTTP handler for service management operations.
func (c *Container) ServiceHandler() (*servicesHTTP.ServiceHandler, error) {
	var err error
	c.serviceHandlerInit.Do(func() {
		c.serviceHandler, err = c.initServiceHandler()
		if err != nil {
			c.initErrors["serviceHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["serviceHandler"]; exists {
		return nil, storedErr
	}
	return c.serviceHandler, nil
}

// initServiceRepository creates the service repository based on the database driver.
func (c *Container) initServiceRepository() (servicesUseCase.ServiceRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for service repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return servicesRepository.NewPostgreSQLServiceRepository(db), nil
	case "mysql":
		return servicesRepository.NewMySQLServiceRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initServiceUseCase creates the service use case with all its dependencies.
func (c *Container) initServiceUseCase() (servicesUseCase.ServiceUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for service use case: %w", err)
	}

	serviceRepository, err := c.ServiceRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get service repository for service use case: %w", err)
	}

	baseUseCase := servicesUseCase.NewServiceUseCase(
		txManager,
		serviceRepository,
		c.PasswordService(),
		c.config.DBQueryTimeout,
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for service use case: %w", err)
		}
		return servicesUseCase.NewServiceUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initAuthUseCase creates the authentication use case with all its dependencies.
func (c *Container) initAuthUseCase() (servicesUseCase.AuthUseCase, error) {
	serviceRepository, err := c.ServiceRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get service repository for auth use case: %w", err)
	}

	baseUseCase := servicesUseCase.NewAuthUseCase(
		serviceRepository,
		c.PasswordService(),
		c.config.DBQueryTimeout,
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for auth use case: %w", err)
		}
		return servicesUseCase.NewAuthUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initServiceHandler creates the service HTTP handler with all its dependencies.
func (c *Container) initServiceHandler() (*servicesHTTP.ServiceHandler, error) {
	serviceUseCase, err := c.ServiceUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get service use case for service handler: %w", err)
	}

	return servicesHTTP.NewServiceHandler(serviceUseCase, c.Logger()), nil
}
