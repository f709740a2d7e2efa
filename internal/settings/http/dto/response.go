package dto

import (
	"time"

	settingsDomain "github.com/pcoetsee/settings-service/internal/settings/domain"
)

// SettingResponse represents a setting in API responses.
type SettingResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Value        string     `json:"value"`
	DateLastUsed *time.Time `json:"date_last_used,omitempty"`
}

// MapSettingToResponse converts a domain setting to an API response.
func MapSettingToResponse(setting *settingsDomain.Setting) SettingResponse {
	return SettingResponse{
		ID:           setting.ID.String(),
		Name:         setting.Name,
		Value:        setting.Value,
		DateLastUsed: setting.DateLastUsed,
	}
}

// ListSettingsResponse represents a paginated list of settings.
type ListSettingsResponse struct {
	Data       []SettingResponse `json:"data"`
	TotalCount int64             `json:"total_count"`
}

// MapPageToListResponse converts a domain page to a list API response.
func MapPageToListResponse(page *settingsDomain.Page) ListSettingsResponse {
	settingResponses := make([]SettingResponse, 0, len(page.Items))
	for _, setting := range page.Items {
		settingResponses = append(settingResponses, MapSettingToResponse(setting))
	}
	return ListSettingsResponse{
		Data:       settingResponses,
		TotalCount: page.TotalCount,
	}
}
