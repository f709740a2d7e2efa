package dto

import (
	"time"

	servicesDomain "github.com/pcoetsee/settings-service/internal/services/domain"
)

// ServiceResponse represents a service in API responses. Password material
// never appears here.
type ServiceResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// MapServiceToResponse converts a domain service to an API response.
func MapServiceToResponse(service *servicesDomain.Service) ServiceResponse {
	return ServiceResponse{
		ID:        service.ID.String(),
		Name:      service.Name,
		Role:      service.Role.String(),
		CreatedAt: service.CreatedAt,
	}
}

// ListServicesResponse represents a paginated list of services.
type ListServicesResponse struct {
	Data       []ServiceResponse `json:"data"`
	TotalCount int64             `json:"total_count"`
}

// MapPageToListResponse converts a domain page to a list API response.
func MapPageToListResponse(page *servicesDomain.Page) ListServicesResponse {
	serviceResponses := make([]ServiceResponse, 0, len(page.Items))
	for _, service := range page.Items {
		serviceResponses = append(serviceResponses, MapServiceToResponse(service))
	}
	return ListServicesResponse{
		Data:       serviceResponses,
		TotalCount: page.TotalCount,
	}
}
