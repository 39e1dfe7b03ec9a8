package agency

import "time"

type Agency struct {
	ID         int64     `gorm:"primaryKey"`
	Name       string    `gorm:"uniqueIndex;not null"`
	Department string    `gorm:"not null"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (Agency) TableName() string {
	return "agencies"
}
