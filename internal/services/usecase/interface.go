// Package usecase defines business logic interfaces for service registration,
// credential management, and authentication.
package usecase

import (
	"context"

	servicesDomain "github.com/pcoetsee/settings-service/internal/services/domain"
)

// ServiceRepository defines persistence operations for service records.
// Implementations must support transaction-aware operations via context propagation.
type ServiceRepository interface {
	// Create stores a new service record. Returns ErrServiceAlreadyExists if a
	// live service with the same name (case-insensitive) exists.
	Create(ctx context.Context, service *servicesDomain.Service) error

	// GetByName retrieves a service by exact name. Returns ErrServiceNotFound
	// if not found.
	GetByName(ctx context.Context, name string) (*servicesDomain.Service, error)

	// Update replaces the mutable fields of an existing service record.
	// Returns ErrServiceNotFound if the record does not exist.
	Update(ctx context.Context, service *servicesDomain.Service) error

	// List retrieves services ordered by ID ascending with pagination support.
	List(ctx context.Context, offset, limit int) ([]*servicesDomain.Service, error)

	// Count returns the total number of live service records.
	Count(ctx context.Context) (int64, error)
}

// ServiceUseCase defines business logic operations for managing service
// records. Mutations are gated by the access policy: a service may modify its
// own record, and the full role may modify any record.
type ServiceUseCase interface {
	// Register creates a new service with a hashed password. The name must be
	// unique among live services under case-insensitive comparison.
	//
	// Returns ErrServiceAlreadyExists on a name collision and a wrapped
	// ErrInvalidInput when the name, password, or role is unusable.
	Register(
		ctx context.Context,
		input *servicesDomain.RegisterServiceInput,
	) (*servicesDomain.Service, error)

	// GetByName retrieves a service record by name with the password hash
	// scrubbed. Returns ErrServiceNotFound if the record does not exist.
	GetByName(ctx context.Context, name string) (*servicesDomain.Service, error)

	// Update modifies the record named by input.Name on behalf of the actor.
	// Role changes apply directly; a password change additionally requires the
	// target's current password unless the actor has the full role.
	//
	// Returns ErrModificationDenied when the actor may not touch the target,
	// and ErrServiceNotFound when the target does not exist.
	Update(
		ctx context.Context,
		actor servicesDomain.Principal,
		input *servicesDomain.UpdateServiceInput,
	) (*servicesDomain.Service, error)

	// List retrieves a page of service records with password hashes scrubbed.
	// Returns ErrNoResults when the requested window is empty.
	List(ctx context.Context, offset, limit int) (*servicesDomain.Page, error)
}

// AuthUseCase defines the authentication entry point used by the transport
// layer to establish the acting service for a request.
type AuthUseCase interface {
	// Authenticate verifies a name/password pair and returns the matching
	// service record with the password hash scrubbed.
	//
	// Returns ErrInvalidCredentials for both an unknown name and a wrong
	// password so the result cannot be used to enumerate registered services.
	Authenticate(ctx context.Context, name, password string) (*servicesDomain.Service, error)
}
