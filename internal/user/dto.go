package user

import (
	errors "github.com/citizenserve/complaint-management/internal"
	"github.com/citizenserve/complaint-management/internal/auth"
	"github.com/citizenserve/complaint-management/internal/core/common/validation"
)

// UpdateUserDTO is the admin-facing shape for PUT /users/{id}. Email and
// password are not editable through this surface.
type UpdateUserDTO struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	AgencyID *int64 `json:"agency_id,omitempty"`
}

func (d UpdateUserDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("name", d.Name).Required()
	v.Field("role", d.Role).Required().OneOf([]string{
		string(auth.RoleCitizen), string(auth.RoleAgency), string(auth.RoleAdmin), string(auth.RoleSuperAdmin),
	}, errors.ErrCodeInvalidRole)
	if err := v.Validate(); err != nil {
		return err
	}

	if d.Role == string(auth.RoleAgency) && (d.AgencyID == nil || *d.AgencyID == 0) {
		return errors.NewValidationFieldError("agency_id",
			"Agency ID is required for agency users", errors.ErrCodeMissingField)
	}

	return nil
}
