// Package mocks provides mock implementations of setting interfaces for testing.
package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	settingsDomain "github.com/pcoetsee/settings-service/internal/settings/domain"
)

// MockSettingRepository is a mock implementation of usecase.SettingRepository.
type MockSettingRepository struct {
	mock.Mock
}

// Create mocks the Create method.
func (m *MockSettingRepository) Create(ctx context.Context, setting *settingsDomain.Setting) error {
	args := m.Called(ctx, setting)
	return args.Error(0)
}

// Update mocks the Update method.
func (m *MockSettingRepository) Update(ctx context.Context, setting *settingsDomain.Setting) error {
	args := m.Called(ctx, setting)
	return args.Error(0)
}

// GetByOwnerAndName mocks the GetByOwnerAndName method.
func (m *MockSettingRepository) GetByOwnerAndName(
	ctx context.Context,
	serviceID uuid.UUID,
	name string,
) (*settingsDomain.Setting, error) {
	args := m.Called(ctx, serviceID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settingsDomain.Setting), args.Error(1)
}

// TouchDateLastUsed mocks the TouchDateLastUsed method.
func (m *MockSettingRepository) TouchDateLastUsed(
	ctx context.Context,
	settingID uuid.UUID,
	usedAt time.Time,
) error {
	args := m.Called(ctx, settingID, usedAt)
	return args.Error(0)
}

// ListByOwner mocks the ListByOwner method.
func (m *MockSettingRepository) ListByOwner(
	ctx context.Context,
	serviceID uuid.UUID,
	offset, limit int,
) ([]*settingsDomain.Setting, error) {
	args := m.Called(ctx, serviceID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*settingsDomain.Setting), args.Error(1)
}

// CountByOwner mocks the CountByOwner method.
func (m *MockSettingRepository) CountByOwner(ctx context.Context, serviceID uuid.UUID) (int64, error) {
	args := m.Called(ctx, serviceID)
	return args.Get(0).(int64), args.Error(1)
}

// Delete mocks the Delete method.
func (m *MockSettingRepository) Delete(
	ctx context.Context,
	serviceID uuid.UUID,
	name string,
) (bool, error) {
	args := m.Called(ctx, serviceID, name)
	return args.Bool(0), args.Error(1)
}
