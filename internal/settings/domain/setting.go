// Package domain defines the setting domain models. A setting is a named
// key/value pair owned by exactly one service; names are unique per owner.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Setting represents a single configuration entry owned by a service.
// DateLastUsed tracks the last read through the lookup path; it is nil until
// the setting has been fetched at least once.
type Setting struct {
	ID           uuid.UUID  // Unique identifier (UUIDv7)
	ServiceID    uuid.UUID  // Owning service, never reassigned
	Name         string     // Unique per owner
	Value        string     // Opaque payload, returned verbatim
	DateLastUsed *time.Time // Touched on each read, nil until first use
}

// UpsertSettingInput contains the parameters for creating or replacing a setting.
type UpsertSettingInput struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Page is a bounded, ordered slice of settings with the owner's total number
// of entries, independent of the requested window.
type Page struct {
	Items      []*Setting
	TotalCount int64
}
