// Package usecase implements business logic orchestration for service
// registration and credential management.
package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pcoetsee/settings-service/internal/database"
	apperrors "github.com/pcoetsee/settings-service/internal/errors"
	servicesDomain "github.com/pcoetsee/settings-service/internal/services/domain"
	servicesService "github.com/pcoetsee/settings-service/internal/services/service"
)

// serviceUseCase implements ServiceUseCase for managing service records.
type serviceUseCase struct {
	txManager       database.TxManager
	serviceRepo     ServiceRepository
	passwordService servicesService.PasswordService
	queryTimeout    time.Duration
}

// begin guards the operation entry: an already ended context never reaches the
// store, and every store call runs under the configured query timeout.
func (s *serviceUseCase) begin(ctx context.Context) (context.Context, context.CancelFunc, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, database.WrapError(err, "operation aborted before store call")
	}
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	return ctx, cancel, nil
}

// Register creates and persists a new service with a hashed password.
// The name must be unique among live services under case-insensitive
// comparison; the role defaults to read when omitted.
func (s *serviceUseCase) Register(
	ctx context.Context,
	input *servicesDomain.RegisterServiceInput,
) (*servicesDomain.Service, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, servicesDomain.ErrNameRequired
	}
	if strings.TrimSpace(input.Password) == "" {
		return nil, servicesDomain.ErrPasswordRequired
	}

	role := input.Role
	if role == "" {
		role = servicesDomain.ReadRole
	}
	if !role.IsValid() {
		return nil, servicesDomain.ErrInvalidRole
	}

	passwordHash, err := s.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	service := &servicesDomain.Service{
		ID:           uuid.Must(uuid.NewV7()),
		Name:         name,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	ctx, cancel, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	err = s.txManager.WithTx(ctx, func(ctx context.Context) error {
		return s.serviceRepo.Create(ctx, service)
	})
	if err != nil {
		return nil, err
	}

	return service.Scrubbed(), nil
}

// GetByName retrieves a service record by name with the password hash scrubbed.
func (s *serviceUseCase) GetByName(ctx context.Context, name string) (*servicesDomain.Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, servicesDomain.ErrNameRequired
	}

	ctx, cancel, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	service, err := s.serviceRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	return service.Scrubbed(), nil
}

// Update modifies the record named by input.Name on behalf of the actor.
//
// The record gate runs first: self-modification is always allowed and anything
// else requires the full role. A password change is then gated separately, so
// a read-role service changing its own password must still present its current
// one. Role and password changes are applied to the fetched record and written
// back as a whole inside one transaction.
func (s *serviceUseCase) Update(
	ctx context.Context,
	actor servicesDomain.Principal,
	input *servicesDomain.UpdateServiceInput,
) (*servicesDomain.Service, error) {
	targetName := strings.TrimSpace(input.Name)

	if err := servicesDomain.CanModifyRecord(actor.Name(), actor.Role(), targetName); err != nil {
		return nil, err
	}

	// Names match case-insensitively, so a self-update addressed in a
	// different case resolves to the actor's stored name.
	if actor.Is(targetName) {
		targetName = actor.Name()
	}

	if input.Role != "" && !input.Role.IsValid() {
		return nil, servicesDomain.ErrInvalidRole
	}

	ctx, cancel, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	var updated *servicesDomain.Service

	err = s.txManager.WithTx(ctx, func(ctx context.Context) error {
		target, err := s.serviceRepo.GetByName(ctx, targetName)
		if err != nil {
			return err
		}

		if input.Role != "" {
			target.Role = input.Role
		}

		if strings.TrimSpace(input.Password) != "" {
			newHash, err := s.passwordService.HashPassword(input.Password)
			if err != nil {
				return err
			}

			if servicesDomain.PasswordChangeRequested(newHash, target.PasswordHash) {
				allowed, err := servicesDomain.CanModifyPassword(
					target.Name,
					actor.Role(),
					input.OldPassword,
					target.PasswordHash,
					s.passwordService.ComparePassword,
				)
				if err != nil {
					return err
				}
				if !allowed {
					return servicesDomain.ErrModificationDenied
				}

				target.PasswordHash = newHash
			}
		}

		if err := s.serviceRepo.Update(ctx, target); err != nil {
			return err
		}

		updated = target
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated.Scrubbed(), nil
}

// List retrieves a page of service records with password hashes scrubbed.
// An empty window is an error: callers asked for records and got none.
func (s *serviceUseCase) List(ctx context.Context, offset, limit int) (*servicesDomain.Page, error) {
	ctx, cancel, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	var page *servicesDomain.Page

	err = s.txManager.WithTx(ctx, func(ctx context.Context) error {
		services, err := s.serviceRepo.List(ctx, offset, limit)
		if err != nil {
			return err
		}

		if len(services) == 0 {
			return apperrors.Wrap(apperrors.ErrNoResults, "no services found")
		}

		count, err := s.serviceRepo.Count(ctx)
		if err != nil {
			return err
		}

		items := make([]*servicesDomain.Service, len(services))
		for i, service := range services {
			items[i] = service.Scrubbed()
		}

		page = &servicesDomain.Page{Items: items, TotalCount: count}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return page, nil
}

// NewServiceUseCase creates a new ServiceUseCase with the provided dependencies.
func NewServiceUseCase(
	txManager database.TxManager,
	serviceRepo ServiceRepository,
	passwordService servicesService.PasswordService,
	queryTimeout time.Duration,
) ServiceUseCase {
	return &serviceUseCase{
		txManager:       txManager,
		serviceRepo:     serviceRepo,
		passwordService: passwordService,
		queryTimeout:    queryTimeout,
	}
}
