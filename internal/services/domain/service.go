package domain

import (
	"time"

	"github.com/google/uuid"
)

// Service represents a registered client service that owns a password and a
// set of settings. Names are unique across live services under case-insensitive
// comparison; the ID is assigned once at creation and never reused.
type Service struct {
	ID           uuid.UUID // Unique identifier (UUIDv7)
	Name         string    // Unique service name
	PasswordHash string    //nolint:gosec // hashed password (not plaintext)
	Role         Role      // Capability tier (read or full)
	CreatedAt    time.Time // Set once at creation, immutable
}

// Scrubbed returns a copy of the service with the password hash removed.
// Every externally exposed projection of a service must go through this.
func (s *Service) Scrubbed() *Service {
	if s == nil {
		return nil
	}
	out := *s
	out.PasswordHash = ""
	return &out
}

// RegisterServiceInput contains the parameters for registering a new service.
type RegisterServiceInput struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// UpdateServiceInput contains the mutable fields for updating a service record.
// Password is the new plaintext password when a change is requested; OldPassword
// must carry the target's current password unless the actor has the full role.
type UpdateServiceInput struct {
	Name        string `json:"name"`
	Role        Role   `json:"role"`
	Password    string `json:"password"`
	OldPassword string `json:"old_password"`
}

// Page is a bounded, ordered slice of services with the total number of live
// records, independent of the requested window.
type Page struct {
	Items      []*Service
	TotalCount int64
}
