package complaint

import (
	errors "github.com/citizenserve/complaint-management/internal"
	"github.com/citizenserve/complaint-management/internal/core/common/validation"
)

// CreateComplaintDTO is the payload for POST /complaints. Priority is
// optional and defaults to "medium"; category is free text from a suggested
// set and intentionally unconstrained.
type CreateComplaintDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	Priority    string `json:"priority,omitempty"`
}

func (d CreateComplaintDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("title", d.Title).Required().MaxLength(200)
	v.Field("description", d.Description).Required()
	v.Field("category", d.Category).Required()
	v.Field("location", d.Location).Required()
	return v.Validate()
}

// UpdateStatusDTO carries the new status verbatim. The value is written
// without enum validation, matching the source system.
type UpdateStatusDTO struct {
	Status string `json:"status"`
}

type UpdatePriorityDTO struct {
	Priority string `json:"priority"`
}

func (d UpdatePriorityDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("priority", d.Priority).Required()
	return v.Validate()
}

// AssignDTO carries the target agency id. The id is not verified against the
// agencies table before write; see the service layer.
type AssignDTO struct {
	AgencyID int64 `json:"agency_id"`
}

type AddResponseDTO struct {
	Message string `json:"message"`
}

func (d AddResponseDTO) Validate() *errors.AppError {
	v := validation.NewValidator()
	v.Field("message", d.Message).Required()
	return v.Validate()
}
