package app

import (
	"fmt"

	settingsHTTP "github.com/pcoetsee/settings-service/internal/settings/http"
	settingsRepository "github.com/pcoetsee/settings-service/internal/settings/repository"
	settingsUseCase "github.com/pcoetsee/settings-service/internal/settings/usecase"
)

// SettingRepository returns the setting repository based on database driver.
func (c *Container) SettingRepository() (settingsUseCase.SettingRepository, error) {
	var err error
	c.settingRepositoryInit.Do(func() {
		c.settingRepository, err = c.initSettingRepository()
		if err != nil {
			c.initErrors["settingRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["settingRepository"]; exists {
		return nil, storedErr
	}
	return c.settingRepository, nil
}

// SettingUseCase returns the setting use case.
func (c *Container) SettingUseCase() (settingsUseCase.SettingUseCase, error) {
	var err error
	c.settingUseCaseInit.Do(func() {
		c.settingUseCase, err = c.initSettingUseCase()
		if err != nil {
			c.initErrors["settingUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["settingUseCase"]; exists {
		return nil, storedErr
	}
	return c.settingUseCase, nil
}

// SettingHandler returns the HTTP handler for setting operations.
func (c *Container) SettingHandler() (*settingsHTTP.SettingHandler, error) {
	var err error
	c.settingHandlerInit.Do(func() {
		c.settingHandler, err = c.initSettingHandler()
		if err != nil {
			c.initErrors["settingHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["settingHandler"]; exists {
		return nil, storedErr
	}
	return c.settingHandler, nil
}

// initSettingRepository creates the setting repository based on the database driver.
func (c *Container) initSettingRepository() (settingsUseCase.SettingRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for setting repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return settingsRepository.NewPostgreSQLSettingRepository(db), nil
	case "mysql":
		return settingsRepository.NewMySQLSettingRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initSettingUseCase creates the setting use case with all its dependencies.
func (c *Container) initSettingUseCase() (settingsUseCase.SettingUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for setting use case: %w", err)
	}

	settingRepository, err := c.SettingRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get setting repository for setting use case: %w", err)
	}

	authUseCase, err := c.AuthUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get auth use case for setting use case: %w", err)
	}

	baseUseCase := settingsUseCase.NewSettingUseCase(
		txManager,
		settingRepository,
		authUseCase,
		c.config.DBQueryTimeout,
	)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for setting use case: %w", err)
		}
		return settingsUseCase.NewSettingUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initSettingHandler creates the setting HTTP handler with all its dependencies.
func (c *Container) initSettingHandler() (*settingsHTTP.SettingHandler, error) {
	settingUseCase, err := c.SettingUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get setting use case for setting handler: %w", err)
	}

	serviceUseCase, err := c.ServiceUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get service use case for setting handler: %w", err)
	}

	return settingsHTTP.NewSettingHandler(settingUseCase, serviceUseCase, c.Logger()), nil
}
