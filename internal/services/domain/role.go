// Package domain defines the service (tenant/principal) domain models and the
// access-control rules that gate mutations of service records.
package domain

import "strings"

// Role is the capability tier assigned to a service. FULL is a strict superset
// of READ: it keeps self-service access and may additionally act on any other
// service's record.
type Role string

const (
	// ReadRole allows a service to act on its own record and settings only.
	ReadRole Role = "read"

	// FullRole allows a service to act on any service's record and settings.
	FullRole Role = "full"
)

// RoleFromString parses a role name, ignoring case. Unknown names return false.
func RoleFromString(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(ReadRole):
		return ReadRole, true
	case string(FullRole):
		return FullRole, true
	default:
		return "", false
	}
}

// IsValid reports whether the role is one of the known tiers.
func (r Role) IsValid() bool {
	return r == ReadRole || r == FullRole
}

// String returns the lowercase role name as stored.
func (r Role) String() string {
	return string(r)
}
