package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/pcoetsee/settings-service/internal/errors"
	servicesDomain "github.com/pcoetsee/settings-service/internal/services/domain"
	"github.com/pcoetsee/settings-service/internal/services/http/dto"
	"github.com/pcoetsee/settings-service/internal/services/usecase/mocks"
)

// setupServiceHandler creates a test handler with mocked dependencies.
func setupServiceHandler(t *testing.T) (*ServiceHandler, *mocks.MockServiceUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := &mocks.MockServiceUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewServiceHandler(mockUseCase, logger), mockUseCase
}

// createTestContext creates a test Gin context with the given request.
func createTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

func testServiceRecord(name string, role servicesDomain.Role) *servicesDomain.Service {
	return &servicesDomain.Service{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      name,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}
}

func TestServiceHandler_RegisterHandler(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		handler, mockUseCase := setupServiceHandler(t)

		created := testServiceRecord("billing", servicesDomain.ReadRole)
		mockUseCase.On("Register", mock.Anything, mock.MatchedBy(func(input *servicesDomain.RegisterServiceInput) bool {
			return input.Name == "billing" && input.Password == "s3cret"
		})).Return(created, nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/services", dto.RegisterServiceRequest{
			Name:     "billing",
			Password: "s3cret",
			Role:     "read",
		})

		handler.RegisterHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.ServiceResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "billing", response.Name)
		assert.Equal(t, "read", response.Role)
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("Error_MissingName", func(t *testing.T) {
		handler, mockUseCase := setupServiceHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/services", dto.RegisterServiceRequest{
			Password: "s3cret",
		})

		handler.RegisterHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("Error_UnknownRole", func(t *testing.T) {
		handler, _ := setupServiceHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/services", dto.RegisterServiceRequest{
			Name:     "billing",
			Password: "s3cret",
			Role:     "admin",
		})

		handler.RegisterHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Error_DuplicateName", func(t *testing.T) {
		handler, mockUseCase := setupServiceHandler(t)

		mockUseCase.On("Register", mock.Anything, mock.Anything).
			Return(nil, servicesDomain.ErrServiceAlreadyExists).Once()

		c, w := createTestContext(http.MethodPost, "/v1/services", dto.RegisterServiceRequest{
			Name:     "billing",
			Password: "s3cret",
		})

		handler.RegisterHandler(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestServiceHandler_GetHandler(t *testing.T) {
	t.Run("Success_ReturnsService", func(t *testing.T) {
		handler, mockUseCase := setupServiceHandler(t)

		stored := testServiceRecord("billing", servicesDomain.FullRole)
		mockUseCase.On("GetByName", mock.Anything, "billing").Return(stored, nil).Once()

		c, w := createTestContext(http.MethodGet, "/v1/services/billing", nil)
		c.Params = gin.Params{{Key: "name", Value: "billing"}}

		handler.GetHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ServiceResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, stored.ID.String(), response.ID)
		assert.Equal(t, "full", response.Role)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, mockUseCase := setupServiceHandler(t)

		mockUseCase.On("GetByName", mock.Anything, "ghost").
			Return(nil, servicesDomain.ErrServiceNotFound).Once()

		c, w := createTestContext(http.MethodGet, "/v1/services/ghost", nil)
		c.Params = gin.Params{{Key: "name", Value: "ghost"}}

		handler.GetHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestServiceHandler_ListHandler(t *testing.T) {
	t.Run("Success_ReturnsPage", func(t *testing.T) {
		handler, mockUseCase := setupServiceHandler(t)

		page := &servicesDomain.Page{
			Items: []*servicesDomain.Service{
				testServiceRecord("billing", servicesDomain.ReadRole),
				testServiceRecord("shipping", servicesDomain.FullRole),
			},
			TotalCount: 2,
		}
		mockUseCase.On("List", mock.Anything, 0, 50).Return(page, nil).Once()

		c, w := createTestContext(http.MethodGet, "/v1/services", nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListServicesResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, int64(2), response.TotalCount)
		assert.Len(t, response.Data, 2)
	})

	t.Run("Error_EmptyStoreIs404", func(t *testing.T) {
		handler, mockUseCase := setupServiceHandler(t)

		mockUseCase.On("List", mock.Anything, 0, 50).
			Return(nil, apperrors.ErrNoResults).Once()

		c, w := createTestContext(http.MethodGet, "/v1/services", nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Error_InvalidPagination", func(t *testing.T) {
		handler, mockUseCase := setupServiceHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/services?offset=abc", nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockUseCase.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestServiceHandler_UpdateHandler(t *testing.T) {
	t.Run("Success_UpdateOwnRecord", func(t *testing.T) {
		handler, mockUseCase := setupServiceHandler(t)

		actor := testServiceRecord("billing", servicesDomain.ReadRole)
		updated := testServiceRecord("billing", servicesDomain.FullRole)

		mockUseCase.On("Update", mock.Anything, servicesDomain.NewPrincipal(actor),
			mock.MatchedBy(func(input *servicesDomain.UpdateServiceInput) bool {
				return input.Name == "billing" && input.Role == servicesDomain.FullRole
			})).Return(updated, nil).Once()

		c, w := createTestContext(http.MethodPut, "/v1/services/billing", dto.UpdateServiceRequest{
			Role: "full",
		})
		c.Params = gin.Params{{Key: "name", Value: "billing"}}
		c.Request = c.Request.WithContext(WithService(c.Request.Context(), actor))

		handler.UpdateHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Error_NoAuthenticatedService", func(t *testing.T) {
		handler, mockUseCase := setupServiceHandler(t)

		c, w := createTestContext(http.MethodPut, "/v1/services/billing", dto.UpdateServiceRequest{
			Role: "full",
		})
		c.Params = gin.Params{{Key: "name", Value: "billing"}}

		handler.UpdateHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockUseCase.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Error_ModificationDenied", func(t *testing.T) {
		handler, mockUseCase := setupServiceHandler(t)

		actor := testServiceRecord("billing", servicesDomain.ReadRole)
		mockUseCase.On("Update", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, servicesDomain.ErrModificationDenied).Once()

		c, w := createTestContext(http.MethodPut, "/v1/services/other", dto.UpdateServiceRequest{
			Role: "full",
		})
		c.Params = gin.Params{{Key: "name", Value: "other"}}
		c.Request = c.Request.WithContext(WithService(c.Request.Context(), actor))

		handler.UpdateHandler(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
