package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	settingsDomain "github.com/pcoetsee/settings-service/internal/settings/domain"
)

// MockSettingUseCase is a mock implementation of usecase.SettingUseCase.
type MockSettingUseCase struct {
	mock.Mock
}

// Get mocks the Get method.
func (m *MockSettingUseCase) Get(
	ctx context.Context,
	ownerName, ownerPassword, settingName string,
) (*settingsDomain.Setting, error) {
	args := m.Called(ctx, ownerName, ownerPassword, settingName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settingsDomain.Setting), args.Error(1)
}

// ListForOwner mocks the ListForOwner method.
func (m *MockSettingUseCase) ListForOwner(
	ctx context.Context,
	ownerName, ownerPassword string,
	offset, limit int,
) (*settingsDomain.Page, error) {
	args := m.Called(ctx, ownerName, ownerPassword, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settingsDomain.Page), args.Error(1)
}

// Upsert mocks the Upsert method.
func (m *MockSettingUseCase) Upsert(
	ctx context.Context,
	ownerID uuid.UUID,
	input *settingsDomain.UpsertSettingInput,
) (*settingsDomain.Setting, error) {
	args := m.Called(ctx, ownerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*settingsDomain.Setting), args.Error(1)
}

// Delete mocks the Delete method.
func (m *MockSettingUseCase) Delete(ctx context.Context, ownerID uuid.UUID, name string) (bool, error) {
	args := m.Called(ctx, ownerID, name)
	return args.Bool(0), args.Error(1)
}
