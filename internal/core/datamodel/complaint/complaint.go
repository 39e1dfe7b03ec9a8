package complaint

import "time"

// Complaint is the persistence model for the complaints table. Status and
// priority are free-form text columns: the write path deliberately does not
// constrain them to the enum (see the service layer).
type Complaint struct {
	ID          int64     `gorm:"primaryKey"`
	UserID      int64     `gorm:"column:user_id;not null"`
	Title       string    `gorm:"not null"`
	Description string    `gorm:"not null"`
	Category    string    `gorm:"not null"`
	Location    string    `gorm:"not null"`
	Priority    string    `gorm:"default:medium"`
	Status      string    `gorm:"default:new"`
	AssignedTo  *int64    `gorm:"column:assigned_to"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (Complaint) TableName() string {
	return "complaints"
}

// Response is an append-only comment on a complaint.
type Response struct {
	ID          int64     `gorm:"primaryKey"`
	ComplaintID int64     `gorm:"column:complaint_id;not null"`
	UserID      int64     `gorm:"column:user_id;not null"`
	Message     string    `gorm:"not null"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (Response) TableName() string {
	return "responses"
}
