package domain

import "strings"

// Principal is a stateless view of a service's identity and capability,
// computed on demand from a service record. The record itself stays a plain
// data entity; anything that needs identity semantics adapts through here.
type Principal struct {
	name string
	role Role
}

// NewPrincipal builds a principal for the given service record.
func NewPrincipal(svc *Service) Principal {
	if svc == nil {
		return Principal{}
	}
	return Principal{name: svc.Name, role: svc.Role}
}

// Name returns the principal's service name.
func (p Principal) Name() string {
	return p.name
}

// Role returns the principal's capability tier.
func (p Principal) Role() Role {
	return p.role
}

// HasFullAccess reports whether the principal holds the full role.
func (p Principal) HasFullAccess() bool {
	return p.role == FullRole
}

// Is reports whether the principal is the named service, ignoring case.
func (p Principal) Is(serviceName string) bool {
	return strings.EqualFold(p.name, serviceName)
}

// CanActOn reports whether the principal may act on the named service's
// records: always on itself, on anyone with the full role.
func (p Principal) CanActOn(serviceName string) bool {
	return p.Is(serviceName) || p.HasFullAccess()
}
