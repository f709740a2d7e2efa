package usecase

import (
	"context"
	"time"

	"github.com/pcoetsee/settings-service/internal/metrics"
	servicesDomain "github.com/pcoetsee/settings-service/internal/services/domain"
)

const metricsDomain = "services"

// serviceUseCaseWithMetrics decorates ServiceUseCase with metrics instrumentation.
type serviceUseCaseWithMetrics struct {
	next    ServiceUseCase
	metrics metrics.BusinessMetrics
}

// NewServiceUseCaseWithMetrics wraps a ServiceUseCase with metrics recording.
func NewServiceUseCaseWithMetrics(useCase ServiceUseCase, m metrics.BusinessMetrics) ServiceUseCase {
	return &serviceUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (s *serviceUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	s.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// Register records metrics for service registration.
func (s *serviceUseCaseWithMetrics) Register(
	ctx context.Context,
	input *servicesDomain.RegisterServiceInput,
) (*servicesDomain.Service, error) {
	start := time.Now()
	service, err := s.next.Register(ctx, input)
	s.record(ctx, "service_register", start, err)
	return service, err
}

// GetByName records metrics for service retrieval.
func (s *serviceUseCaseWithMetrics) GetByName(
	ctx context.Context,
	name string,
) (*servicesDomain.Service, error) {
	start := time.Now()
	service, err := s.next.GetByName(ctx, name)
	s.record(ctx, "service_get", start, err)
	return service, err
}

// Update records metrics for service updates.
func (s *serviceUseCaseWithMetrics) Update(
	ctx context.Context,
	actor servicesDomain.Principal,
	input *servicesDomain.UpdateServiceInput,
) (*servicesDomain.Service, error) {
	start := time.Now()
	service, err := s.next.Update(ctx, actor, input)
	s.record(ctx, "service_update", start, err)
	return service, err
}

// List records metrics for service listing.
func (s *serviceUseCaseWithMetrics) List(
	ctx context.Context,
	offset, limit int,
) (*servicesDomain.Page, error) {
	start := time.Now()
	page, err := s.next.List(ctx, offset, limit)
	s.record(ctx, "service_list", start, err)
	return page, err
}

// authUseCaseWithMetrics decorates AuthUseCase with metrics instrumentation.
type authUseCaseWithMetrics struct {
	next    AuthUseCase
	metrics metrics.BusinessMetrics
}

// NewAuthUseCaseWithMetrics wraps an AuthUseCase with metrics recording.
func NewAuthUseCaseWithMetrics(useCase AuthUseCase, m metrics.BusinessMetrics) AuthUseCase {
	return &authUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Authenticate records metrics for authentication attempts.
func (a *authUseCaseWithMetrics) Authenticate(
	ctx context.Context,
	name, password string,
) (*servicesDomain.Service, error) {
	start := time.Now()
	service, err := a.next.Authenticate(ctx, name, password)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, metricsDomain, "authenticate", status)
	a.metrics.RecordDuration(ctx, metricsDomain, "authenticate", time.Since(start), status)

	return service, err
}
