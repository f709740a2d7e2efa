package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	servicesDomain "github.com/pcoetsee/settings-service/internal/services/domain"
)

// MockServiceUseCase is a mock implementation of usecase.ServiceUseCase.
type MockServiceUseCase struct {
	mock.Mock
}

// Register mocks the Register method.
func (m *MockServiceUseCase) Register(
	ctx context.Context,
	input *servicesDomain.RegisterServiceInput,
) (*servicesDomain.Service, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*servicesDomain.Service), args.Error(1)
}

// GetByName mocks the GetByName method.
func (m *MockServiceUseCase) GetByName(
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
func (m *MockServiceUseCase) Update(
	ctx context.Context,
	actor servicesDomain.Principal,
	input *servicesDomain.UpdateServiceInput,
) (*servicesDomain.Service, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*servicesDomain.Service), args.Error(1)
}

// List mocks the List method.
func (m *MockServiceUseCase) List(ctx context.Context, offset, limit int) (*servicesDomain.Page, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*servicesDomain.Page), args.Error(1)
}

// MockAuthUseCase is a mock implementation of usecase.AuthUseCase.
type MockAuthUseCase struct {
	mock.Mock
}

// Authenticate mocks the Authenticate method.
func (m *MockAuthUseCase) Authenticate(
	ctx context.Context,
	name, password string,
) (*servicesDomain.Service, error) {
	args := m.Called(ctx, name, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*servicesDomain.Service), args.Error(1)
}
