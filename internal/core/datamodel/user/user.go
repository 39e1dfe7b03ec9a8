package user

import "time"

// User is the persistence model for the users table. PasswordHash carries the
// bcrypt hash and must never reach a response body.
type User struct {
	ID           int64     `gorm:"primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Name         string    `gorm:"not null"`
	Role         string    `gorm:"not null"`
	AgencyID     *int64    `gorm:"column:agency_id"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (User) TableName() string {
	return "users"
}
