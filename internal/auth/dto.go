package auth

import (
	errors "github.com/citizenserve/complaint-management/internal"
	"github.com/citizenserve/complaint-management/internal/core/common/validation"
)

// RegisterDTO is the transport shape for POST /users/register.
type RegisterDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	AgencyID *int64 `json:"agency_id,omitempty"`
}

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (d RegisterDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("email", d.Email).Required().Email()
	v.Field("password", d.Password).Required().MinLength(6)
	v.Field("name", d.Name).Required()
	v.Field("role", d.Role).Required().OneOf([]string{
		string(RoleCitizen), string(RoleAgency), string(RoleAdmin), string(RoleSuperAdmin),
	}, errors.ErrCodeInvalidRole)
	if err := v.Validate(); err != nil {
		return err
	}

	// agency_id is required for agency users but deliberately not checked
	// against the agencies table; an admin links the agency later.
	if d.Role == string(RoleAgency) && (d.AgencyID == nil || *d.AgencyID == 0) {
		return errors.NewValidationFieldError("agency_id",
			"Agency ID is required for agency users", errors.ErrCodeMissingField)
	}

	return nil
}

func (d LoginDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("email", d.Email).Required()
	v.Field("password", d.Password).Required()
	return v.Validate()
}
