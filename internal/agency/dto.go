package agency

import (
	errors "github.com/citizenserve/complaint-management/internal"
	"github.com/citizenserve/complaint-management/internal/core/common/validation"
)

// CreateAgencyDTO carries the POST /agencies payload. UserID optionally names
// an existing agency-role user to link to the new agency in one transaction.
type CreateAgencyDTO struct {
	Name       string `json:"name"`
	Department string `json:"department"`
	UserID     *int64 `json:"userId,omitempty"`
}

func (d CreateAgencyDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("name", d.Name).Required().MaxLength(200)
	v.Field("department", d.Department).Required().MaxLength(200)
	return v.Validate()
}
