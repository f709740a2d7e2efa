// Package dto provides data transfer objects for service HTTP handling.
package dto

import (
	validation "github.com/jellydator/validation"

	servicesDomain "github.com/pcoetsee/settings-service/internal/services/domain"
	customValidation "github.com/pcoetsee/settings-service/internal/validation"
)

// RegisterServiceRequest contains the parameters for registering a new service.
type RegisterServiceRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Validate checks if the register service request is valid.
func (r *RegisterServiceRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&r.Password,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.Role,
			validation.By(validateRole),
		),
	)
}

// ToInput converts the request to a use case input. The role has already been
// validated; an empty role is left for the use case default.
func (r *RegisterServiceRequest) ToInput() *servicesDomain.RegisterServiceInput {
	role, _ := servicesDomain.RoleFromString(r.Role)
	return &servicesDomain.RegisterServiceInput{
		Name:     r.Name,
		Password: r.Password,
		Role:     role,
	}
}

// UpdateServiceRequest contains the mutable fields for updating a service.
// All fields are optional; absent fields leave the record untouched.
type UpdateServiceRequest struct {
	Role        string `json:"role"`
	Password    string `json:"password"`
	OldPassword string `json:"old_password"`
}

// Validate checks if the update service request is valid.
func (r *UpdateServiceRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Role,
			validation.By(validateRole),
		),
	)
}

// ToInput converts the request to a use case input for the named target.
func (r *UpdateServiceRequest) ToInput(targetName string) *servicesDomain.UpdateServiceInput {
	role, _ := servicesDomain.RoleFromString(r.Role)
	return &servicesDomain.UpdateServiceInput{
		Name:        targetName,
		Role:        role,
		Password:    r.Password,
		OldPassword: r.OldPassword,
	}
}

// validateRole accepts an empty role or one of the known tiers.
func validateRole(value interface{}) error {
	role, ok := value.(string)
	if !ok {
		return validation.NewError("validation_role_type", "must be a string")
	}
	if role == "" {
		return nil
	}
	if _, ok := servicesDomain.RoleFromString(role); !ok {
		return validation.NewError("validation_role", "must be read or full")
	}
	return nil
}
