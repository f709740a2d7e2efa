// Package usecase implements business logic orchestration for settings.
package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pcoetsee/settings-service/internal/database"
	settingsDomain "github.com/pcoetsee/settings-service/internal/settings/domain"
)

// settingUseCase implements SettingUseCase.
type settingUseCase struct {
	txManager     database.TxManager
	settingRepo   SettingRepository
	authenticator Authenticator
	queryTimeout  time.Duration
}

// begin guards the operation entry: an already ended context never reaches the
// store, and every store call runs under the configured query timeout.
func (s *settingUseCase) begin(ctx context.Context) (context.Context, context.CancelFunc, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, database.WrapError(err, "operation aborted before store call")
	}
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	return ctx, cancel, nil
}

// Get authenticates the owner, fetches the named setting, and stamps its
// date-last-used marker, all inside one transaction. The returned setting
// carries the new marker.
func (s *settingUseCase) Get(
	ctx context.Context,
	ownerName, ownerPassword, settingName string,
) (*settingsDomain.Setting, error) {
	settingName = strings.TrimSpace(settingName)
	if settingName == "" {
		return nil, settingsDomain.ErrSettingNameRequired
	}

	ctx, cancel, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	var setting *settingsDomain.Setting

	err = s.txManager.WithTx(ctx, func(ctx context.Context) error {
		owner, err := s.authenticator.Authenticate(ctx, ownerName, ownerPassword)
		if err != nil {
			return err
		}

		found, err := s.settingRepo.GetByOwnerAndName(ctx, owner.ID, settingName)
		if err != nil {
			return err
		}

		usedAt := time.Now().UTC()
		if err := s.settingRepo.TouchDateLastUsed(ctx, found.ID, usedAt); err != nil {
			return err
		}

		found.DateLastUsed = &usedAt
		setting = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	return setting, nil
}

// ListForOwner authenticates the owner and retrieves a page of its settings.
// An owner with no settings gets an empty page; listing reads do not stamp
// date-last-used.
func (s *settingUseCase) ListForOwner(
	ctx context.Context,
	ownerName, ownerPassword string,
	offset, limit int,
) (*settingsDomain.Page, error) {
	ctx, cancel, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	var page *settingsDomain.Page

	err = s.txManager.WithTx(ctx, func(ctx context.Context) error {
		owner, err := s.authenticator.Authenticate(ctx, ownerName, ownerPassword)
		if err != nil {
			return err
		}

		settings, err := s.settingRepo.ListByOwner(ctx, owner.ID, offset, limit)
		if err != nil {
			return err
		}

		count, err := s.settingRepo.CountByOwner(ctx, owner.ID)
		if err != nil {
			return err
		}

		page = &settingsDomain.Page{Items: settings, TotalCount: count}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return page, nil
}

// Upsert creates the named setting or replaces its value. A replaced setting
// keeps its identity and its date-last-used marker; only the value moves.
func (s *settingUseCase) Upsert(
	ctx context.Context,
	ownerID uuid.UUID,
	input *settingsDomain.UpsertSettingInput,
) (*settingsDomain.Setting, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, settingsDomain.ErrSettingNameRequired
	}

	ctx, cancel, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	var setting *settingsDomain.Setting

	err = s.txManager.WithTx(ctx, func(ctx context.Context) error {
		existing, err := s.settingRepo.GetByOwnerAndName(ctx, ownerID, name)
		if err != nil {
			if !errors.Is(err, settingsDomain.ErrSettingNotFound) {
				return err
			}

			created := &settingsDomain.Setting{
				ID:        uuid.Must(uuid.NewV7()),
				ServiceID: ownerID,
				Name:      name,
				Value:     input.Value,
			}
			if err := s.settingRepo.Create(ctx, created); err != nil {
				return err
			}

			setting = created
			return nil
		}

		existing.Value = input.Value
		if err := s.settingRepo.Update(ctx, existing); err != nil {
			return err
		}

		setting = existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	return setting, nil
}

// Delete removes the named setting. A miss reports false without an error.
func (s *settingUseCase) Delete(ctx context.Context, ownerID uuid.UUID, name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, settingsDomain.ErrSettingNameRequired
	}

	ctx, cancel, err := s.begin(ctx)
	if err != nil {
		return false, err
	}
	defer cancel()

	var removed bool

	err = s.txManager.WithTx(ctx, func(ctx context.Context) error {
		removed, err = s.settingRepo.Delete(ctx, ownerID, name)
		return err
	})
	if err != nil {
		return false, err
	}

	return removed, nil
}

// NewSettingUseCase creates a new SettingUseCase with the provided dependencies.
func NewSettingUseCase(
	txManager database.TxManager,
	settingRepo SettingRepository,
	authenticator Authenticator,
	queryTimeout time.Duration,
) SettingUseCase {
	return &settingUseCase{
		txManager:     txManager,
		settingRepo:   settingRepo,
		authenticator: authenticator,
		queryTimeout:  queryTimeout,
	}
}
