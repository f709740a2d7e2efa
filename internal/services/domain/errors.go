package domain

import (
	"github.com/pcoetsee/settings-service/internal/errors"
)

// Service-specific error definitions.
var (
	// ErrServiceNotFound indicates the requested service does not exist.
	ErrServiceNotFound = errors.Wrap(errors.ErrNotFound, "service not found")

	// ErrServiceAlreadyExists indicates a live service with the same name
	// (case-insensitive) already exists.
	ErrServiceAlreadyExists = errors.Wrap(errors.ErrConflict, "service already exists")

	// ErrInvalidCredentials indicates authentication failed. The same error is
	// returned for an unknown name and a wrong password so the result cannot be
	// used to enumerate registered services.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrNameRequired indicates the service name field is required.
	ErrNameRequired = errors.Wrap(errors.ErrInvalidInput, "name is required")

	// ErrPasswordRequired indicates the password field is required.
	ErrPasswordRequired = errors.Wrap(errors.ErrInvalidInput, "password is required")

	// ErrInvalidRole indicates the role is not one of the known tiers.
	ErrInvalidRole = errors.Wrap(errors.ErrInvalidInput, "invalid role")

	// ErrTargetRequired indicates a mutation did not name the service it targets.
	ErrTargetRequired = errors.Wrap(errors.ErrInvalidInput, "target service not specified")

	// ErrModificationDenied indicates the actor may not modify the target record.
	ErrModificationDenied = errors.Wrap(errors.ErrForbidden, "modification of target service denied")
)
