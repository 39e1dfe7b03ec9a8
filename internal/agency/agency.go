package agency

import (
	"errors"
	"time"

	agencyDatamodel "github.com/citizenserve/complaint-management/internal/core/datamodel/agency"
)

// Agency is a government department that complaints can be routed to.
type Agency struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
}

var (
	ErrNameTaken         = errors.New("agency name already exists")
	ErrUserNotFound      = errors.New("linked user not found")
	ErrUserNotAgencyRole = errors.New("user does not have agency role")
)

func FromDataModel(a *agencyDatamodel.Agency) *Agency {
	return &Agency{
		ID:         a.ID,
		Name:       a.Name,
		Department: a.Department,
		CreatedAt:  a.CreatedAt,
	}
}

func FromDataModelSlice(rows []*agencyDatamodel.Agency) []*Agency {
	result := make([]*Agency, len(rows))
	for i, row := range rows {
		result[i] = FromDataModel(row)
	}
	return result
}
