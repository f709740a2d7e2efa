package domain

import (
	"github.com/pcoetsee/settings-service/internal/errors"
)

// Setting-specific error definitions.
var (
	// ErrSettingNotFound indicates the owner has no setting with the given name.
	ErrSettingNotFound = errors.Wrap(errors.ErrNotFound, "setting not found")

	// ErrSettingNameRequired indicates the setting name field is required.
	ErrSettingNameRequired = errors.Wrap(errors.ErrInvalidInput, "setting name is required")
)
