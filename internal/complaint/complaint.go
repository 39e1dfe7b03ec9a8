package complaint

import (
	"errors"
	"time"
)

// Status values follow the intended linear progression new → assigned →
// in-progress → resolved → closed. Transition legality is deliberately not
// enforced at the write path: any status may be written from any prior status
// by an admin, matching the source system's behavior.
const (
	StatusNew        = "new"
	StatusAssigned   = "assigned"
	StatusInProgress = "in-progress"
	StatusResolved   = "resolved"
	StatusClosed     = "closed"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

const DefaultPriority = PriorityMedium

var ErrNotFound = errors.New("complaint not found")

// Complaint is the enriched read model served by list and get-by-id. The
// field names mirror what the SPA consumes: the owning user's name and email
// are joined in, as is the assigned agency's name when set.
type Complaint struct {
	ID                 int64     `json:"id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Category           string    `json:"category"`
	Location           string    `json:"location"`
	Status             string    `json:"status"`
	Priority           string    `json:"priority"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
	CitizenID          int64     `json:"citizenId"`
	CitizenName        string    `json:"citizenName"`
	CitizenEmail       string    `json:"citizenEmail"`
	AssignedTo         *int64    `json:"assignedTo"`
	AssignedAgencyName *string   `json:"assignedAgencyName"`
}

// Response is the enriched read model for a complaint comment.
type Response struct {
	ID          int64     `json:"id"`
	ComplaintID int64     `json:"complaintId"`
	UserID      int64     `json:"userId"`
	UserName    string    `json:"userName"`
	UserRole    string    `json:"userRole"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Filters are the optional list criteria. Multiple values within one field
// are OR-combined; distinct fields are AND-combined.
type Filters struct {
	Status           []string
	Category         []string
	Priority         []string
	UserID           *int64
	AssignedAgencyID *int64
}

func (f Filters) Empty() bool {
	return len(f.Status) == 0 && len(f.Category) == 0 && len(f.Priority) == 0 &&
		f.UserID == nil && f.AssignedAgencyID == nil
}
