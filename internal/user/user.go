package user

import (
	"errors"
	"time"

	userDatamodel "github.com/citizenserve/complaint-management/internal/core/datamodel/user"
)

// User is the domain model. PasswordHash is never serialized; an agency-role
// user may exist unlinked (AgencyID nil) until an admin links it.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	AgencyID     *int64    `json:"agency_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

var ErrNotFound = errors.New("user not found")

func FromDataModel(u *userDatamodel.User) *User {
	return &User{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		AgencyID:     u.AgencyID,
		CreatedAt:    u.CreatedAt,
	}
}

func FromDataModelSlice(rows []*userDatamodel.User) []*User {
	result := make([]*User, len(rows))
	for i, row := range rows {
		result[i] = FromDataModel(row)
	}
	return result
}
