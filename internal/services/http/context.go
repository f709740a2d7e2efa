// Package http provides HTTP handlers and middleware for service management.
package http

import (
	"context"

	servicesDomain "github.com/pcoetsee/settings-service/internal/services/domain"
)

// serviceKey is a context key type for storing authenticated services.
type serviceKey struct{}

// WithService stores an authenticated service in the context.
// Called by the authentication middleware after successful credential checks.
func WithService(ctx context.Context, service *servicesDomain.Service) context.Context {
	return context.WithValue(ctx, serviceKey{}, service)
}

// GetService retrieves the authenticated service from the context.
// Returns (service, true) when one is present, or (nil, false) otherwise.
func GetService(ctx context.Context) (*servicesDomain.Service, bool) {
	service, ok := ctx.Value(serviceKey{}).(*servicesDomain.Service)
	return service, ok
}
