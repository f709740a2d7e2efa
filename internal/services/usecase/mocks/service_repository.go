// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	servicesDomain "github.com/pcoetsee/settings-service/internal/services/domain"
)

// MockServiceRepository is a mock implementation of usecase.ServiceRepository.
type MockServiceRepository struct {
	mock.Mock
}

// Create mocks the Create method.
func (m *MockServiceRepository) Create(ctx context.Context, service *servicesDomain.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

// GetByName mocks the GetByName method.
func (m *MockServiceRepository) GetByName(
	ctx context.Context,
	name string,
) (*servicesDomain.Service, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*servicesDomain.Service), args.Error(1)
}

// Update mocks the Update method.
func (m *MockServiceRepository) Update(ctx context.Context, service *servicesDomain.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

// List mocks the List method.
func (m *MockServiceRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*servicesDomain.Service, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*servicesDomain.Service), args.Error(1)
}

// Count mocks the Count method.
func (m *MockServiceRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
