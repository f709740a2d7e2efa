// Package usecase defines business logic interfaces for setting storage and
// retrieval on behalf of authenticated services.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	servicesDomain "github.com/pcoetsee/settings-service/internal/services/domain"
	settingsDomain "github.com/pcoetsee/settings-service/internal/settings/domain"
)

// SettingRepository defines persistence operations for settings.
// Implementations must support transaction-aware operations via context propagation.
type SettingRepository interface {
	// Create stores a new setting for an owner.
	Create(ctx context.Context, setting *settingsDomain.Setting) error

	// Update replaces the mutable fields of an existing setting.
	// Returns ErrSettingNotFound if the record does not exist.
	Update(ctx context.Context, setting *settingsDomain.Setting) error

	// GetByOwnerAndName retrieves a setting by owner and exact name.
	// Returns ErrSettingNotFound if not found.
	GetByOwnerAndName(ctx context.Context, serviceID uuid.UUID, name string) (*settingsDomain.Setting, error)

	// TouchDateLastUsed marks the setting as read at the given time.
	TouchDateLastUsed(ctx context.Context, settingID uuid.UUID, usedAt time.Time) error

	// ListByOwner retrieves an owner's settings ordered by id ascending with
	// pagination support.
	ListByOwner(ctx context.Context, serviceID uuid.UUID, offset, limit int) ([]*settingsDomain.Setting, error)

	// CountByOwner returns the owner's total number of settings.
	CountByOwner(ctx context.Context, serviceID uuid.UUID) (int64, error)

	// Delete removes the owner's setting with the given name. Reports whether
	// a row was removed; a miss is not an error.
	Delete(ctx context.Context, serviceID uuid.UUID, name string) (bool, error)
}

// Authenticator verifies owner credentials for the read paths that bundle
// authentication and lookup into one atomic unit.
type Authenticator interface {
	Authenticate(ctx context.Context, name, password string) (*servicesDomain.Service, error)
}

// SettingUseCase defines business logic operations for settings.
//
// The read paths take raw owner credentials so that authentication and lookup
// run inside the same transaction. The write paths act on an already resolved
// owner; the transport layer decides who that owner is.
type SettingUseCase interface {
	// Get authenticates the owner and retrieves one setting by name, marking
	// it as used now inside the same transaction.
	//
	// Returns ErrInvalidCredentials on authentication failure, a wrapped
	// ErrInvalidInput for a blank name, and ErrSettingNotFound on a miss.
	Get(ctx context.Context, ownerName, ownerPassword, settingName string) (*settingsDomain.Setting, error)

	// ListForOwner authenticates the owner and retrieves a page of its
	// settings. An owner with no settings gets an empty page, not an error.
	ListForOwner(
		ctx context.Context,
		ownerName, ownerPassword string,
		offset, limit int,
	) (*settingsDomain.Page, error)

	// Upsert creates the named setting or replaces its value. On replace the
	// setting keeps its identity and its date-last-used marker.
	Upsert(
		ctx context.Context,
		ownerID uuid.UUID,
		input *settingsDomain.UpsertSettingInput,
	) (*settingsDomain.Setting, error)

	// Delete removes the named setting. Reports whether a row was removed;
	// deleting an absent setting is not an error.
	Delete(ctx context.Context, ownerID uuid.UUID, name string) (bool, error)
}
