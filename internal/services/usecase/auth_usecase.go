package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/pcoetsee/settings-service/internal/database"
	servicesDomain "github.com/pcoetsee/settings-service/internal/services/domain"
	servicesService "github.com/pcoetsee/settings-service/internal/services/service"
)

// authUseCase implements AuthUseCase for verifying service credentials.
//
// It deliberately opens no transaction of its own: the repository joins the
// caller's transaction when one is on the context, which lets settings
// operations authenticate and read as a single atomic unit.
type authUseCase struct {
	serviceRepo     ServiceRepository
	passwordService servicesService.PasswordService
	queryTimeout    time.Duration
}

// Authenticate verifies a name/password pair and returns the matching service
// with the password hash scrubbed.
//
// Security Notes:
//   - Returns ErrInvalidCredentials for both an unknown name and a wrong
//     password to prevent enumeration of registered services
func (a *authUseCase) Authenticate(
	ctx context.Context,
	name, password string,
) (*servicesDomain.Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, servicesDomain.ErrNameRequired
	}
	if password == "" {
		return nil, servicesDomain.ErrPasswordRequired
	}

	if err := ctx.Err(); err != nil {
		return nil, database.WrapError(err, "operation aborted before store call")
	}
	ctx, cancel := context.WithTimeout(ctx, a.queryTimeout)
	defer cancel()

	service, err := a.serviceRepo.GetByName(ctx, name)
	if err != nil {
		// Unknown name collapses into the generic credentials error.
		if errors.Is(err, servicesDomain.ErrServiceNotFound) {
			return nil, servicesDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !a.passwordService.ComparePassword(password, service.PasswordHash) {
		return nil, servicesDomain.ErrInvalidCredentials
	}

	return service.Scrubbed(), nil
}

// NewAuthUseCase creates a new AuthUseCase with the provided dependencies.
func NewAuthUseCase(
	serviceRepo ServiceRepository,
	passwordService servicesService.PasswordService,
	queryTimeout time.Duration,
) AuthUseCase {
	return &authUseCase{
		serviceRepo:     serviceRepo,
		passwordService: passwordService,
		queryTimeout:    queryTimeout,
	}
}
