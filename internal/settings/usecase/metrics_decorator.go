package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pcoetsee/settings-service/internal/metrics"
	settingsDomain "github.com/pcoetsee/settings-service/internal/settings/domain"
)

const metricsDomain = "settings"

// settingUseCaseWithMetrics decorates SettingUseCase with metrics instrumentation.
type settingUseCaseWithMetrics struct {
	next    SettingUseCase
	metrics metrics.BusinessMetrics
}

// NewSettingUseCaseWithMetrics wraps a SettingUseCase with metrics recording.
func NewSettingUseCaseWithMetrics(useCase SettingUseCase, m metrics.BusinessMetrics) SettingUseCase {
	return &settingUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (s *settingUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	s.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	s.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}

// Get records metrics for setting lookups.
func (s *settingUseCaseWithMetrics) Get(
	ctx context.Context,
	ownerName, ownerPassword, settingName string,
) (*settingsDomain.Setting, error) {
	start := time.Now()
	setting, err := s.next.Get(ctx, ownerName, ownerPassword, settingName)
	s.record(ctx, "setting_get", start, err)
	return setting, err
}

// ListForOwner records metrics for setting listings.
func (s *settingUseCaseWithMetrics) ListForOwner(
	ctx context.Context,
	ownerName, ownerPassword string,
	offset, limit int,
) (*settingsDomain.Page, error) {
	start := time.Now()
	page, err := s.next.ListForOwner(ctx, ownerName, ownerPassword, offset, limit)
	s.record(ctx, "setting_list", start, err)
	return page, err
}

// Upsert records metrics for setting writes.
func (s *settingUseCaseWithMetrics) Upsert(
	ctx context.Context,
	ownerID uuid.UUID,
	input *settingsDomain.UpsertSettingInput,
) (*settingsDomain.Setting, error) {
	start := time.Now()
	setting, err := s.next.Upsert(ctx, ownerID, input)
	s.record(ctx, "setting_upsert", start, err)
	return setting, err
}

// Delete records metrics for setting deletions.
func (s *settingUseCaseWithMetrics) Delete(
	ctx context.Context,
	ownerID uuid.UUID,
	name string,
) (bool, error) {
	start := time.Now()
	removed, err := s.next.Delete(ctx, ownerID, name)
	s.record(ctx, "setting_delete", start, err)
	return removed, err
}
