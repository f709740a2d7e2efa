package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	servicesDomain "github.com/pcoetsee/settings-service/internal/services/domain"
)

func TestMapServiceToResponse(t *testing.T) {
	createdAt := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	service := &servicesDomain.Service{
		ID:        uuid.Must(uuid.NewV7()),
		Name:      "billing",
		Role:      servicesDomain.FullRole,
		CreatedAt: createdAt,
	}

	response := MapServiceToResponse(service)

	assert.Equal(t, service.ID.String(), response.ID)
	assert.Equal(t, "billing", response.Name)
	assert.Equal(t, "full", response.Role)
	assert.Equal(t, createdAt, response.CreatedAt)
}

func TestMapPageToListResponse(t *testing.T) {
	t.Run("Success_WithItems", func(t *testing.T) {
		page := &servicesDomain.Page{
			Items: []*servicesDomain.Service{
				{ID: uuid.Must(uuid.NewV7()), Name: "billing", Role: servicesDomain.ReadRole},
				{ID: uuid.Must(uuid.NewV7()), Name: "reporting", Role: servicesDomain.FullRole},
			},
			TotalCount: 10,
		}

		response := MapPageToListResponse(page)

		assert.Len(t, response.Data, 2)
		assert.Equal(t, "billing", response.Data[0].Name)
		assert.Equal(t, "reporting", response.Data[1].Name)
		assert.Equal(t, int64(10), response.TotalCount)
	})

	t.Run("Success_EmptyPage", func(t *testing.T) {
		page := &servicesDomain.Page{}

		response := MapPageToListResponse(page)

		assert.NotNil(t, response.Data)
		assert.Empty(t, response.Data)
		assert.Equal(t, int64(0), response.TotalCount)
	})
}
