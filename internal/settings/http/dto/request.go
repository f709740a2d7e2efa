// Package dto provides data transfer objects for setting HTTP handling.
package dto

import (
	settingsDomain "github.com/pcoetsee/settings-service/internal/settings/domain"
)

// UpsertSettingRequest contains the payload for creating or replacing a
// setting. The setting name comes from the URL path; an empty value is a
// legitimate payload.
type UpsertSettingRequest struct {
	Value string `json:"value"`
}

// ToInput converts the request to a use case input for the named setting.
func (r *UpsertSettingRequest) ToInput(name string) *settingsDomain.UpsertSettingInput {
	return &settingsDomain.UpsertSettingInput{
		Name:  name,
		Value: r.Value,
	}
}
