package complaint

import (
	"context"
	"log/slog"
	"time"

	complaintDatamodel "github.com/citizenserve/complaint-management/internal/core/datamodel/complaint"
	"github.com/citizenserve/complaint-management/internal/core/events"
)

// Repository defines the data access surface for complaints and responses.
type Repository interface {
	Create(c *complaintDatamodel.Complaint) error
	List(f Filters) ([]*Complaint, error)
	GetByID(id int64) (*Complaint, error)
	UpdateStatus(id int64, status string) error
	UpdatePriority(id int64, priority string) error
	Assign(id int64, agencyID int64) error
	Delete(id int64) error
	CreateResponse(r *complaintDatamodel.Response) error
	ListResponses(complaintID int64) ([]*Response, error)
}

type Service struct {
	repo   Repository
	bus    *events.EventBus
	logger *slog.Logger
}

func NewService(repo Repository, bus *events.EventBus, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		bus:    bus,
		logger: logger,
	}
}

// CreateComplaint files a new complaint for the authenticated citizen. Status
// is always "new" and assignment always empty regardless of input; priority
// falls back to "medium" when omitted.
func (s *Service) CreateComplaint(userID int64, dto CreateComplaintDTO) (int64, error) {
	if err := dto.Validate(); err != nil {
		return 0, err
	}

	priority := dto.Priority
	if priority == "" {
		priority = DefaultPriority
	}

	now := time.Now()
	row := &complaintDatamodel.Complaint{
		UserID:      userID,
		Title:       dto.Title,
		Description: dto.Description,
		Category:    dto.Category,
		Location:    dto.Location,
		Priority:    priority,
		Status:      StatusNew,
		AssignedTo:  nil,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(row); err != nil {
		s.logger.Error("failed to create complaint", "error", err, "user_id", userID)
		return 0, err
	}

	s.logger.Info("complaint created",
		"complaint_id", row.ID,
		"user_id", userID,
		"category", dto.Category,
		"priority", priority)

	s.publish(events.NewComplaintCreatedEvent(row.ID, userID, dto.Category))

	return row.ID, nil
}

func (s *Service) ListComplaints(f Filters) ([]*Complaint, error) {
	complaints, err := s.repo.List(f)
	if err != nil {
		s.logger.Error("failed to list complaints", "error", err)
		return nil, err
	}
	return complaints, nil
}

func (s *Service) GetComplaintByID(id int64) (*Complaint, error) {
	c, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateStatus writes the given status verbatim. The linear progression
// new → assigned → in-progress → resolved → closed is a product convention,
// not a constraint: any value may be written from any prior state.
func (s *Service) UpdateStatus(id int64, dto UpdateStatusDTO) error {
	if err := s.repo.UpdateStatus(id, dto.Status); err != nil {
		if err == ErrNotFound {
			return err
		}
		s.logger.Error("failed to update complaint status", "error", err, "complaint_id", id)
		return err
	}

	s.logger.Info("complaint status updated", "complaint_id", id, "status", dto.Status)
	s.publish(events.NewComplaintStatusChangedEvent(id, dto.Status))
	return nil
}

func (s *Service) UpdatePriority(id int64, dto UpdatePriorityDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	if err := s.repo.UpdatePriority(id, dto.Priority); err != nil {
		if err == ErrNotFound {
			return err
		}
		s.logger.Error("failed to update complaint priority", "error", err, "complaint_id", id)
		return err
	}

	s.logger.Info("complaint priority updated", "complaint_id", id, "priority", dto.Priority)
	return nil
}

// AssignComplaint links the complaint to an agency. The agency id is trusted
// as supplied; it is not verified against the agencies table.
func (s *Service) AssignComplaint(id int64, agencyID int64) error {
	if err := s.repo.Assign(id, agencyID); err != nil {
		if err == ErrNotFound {
			return err
		}
		s.logger.Error("failed to assign complaint", "error", err, "complaint_id", id, "agency_id", agencyID)
		return err
	}

	s.logger.Info("complaint assigned", "complaint_id", id, "agency_id", agencyID)
	s.publish(events.NewComplaintAssignedEvent(id, agencyID))
	return nil
}

// DeleteComplaint permanently removes the row. Responses referencing it are
// left in place when the storage engine does not cascade.
func (s *Service) DeleteComplaint(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		if err == ErrNotFound {
			return err
		}
		s.logger.Error("failed to delete complaint", "error", err, "complaint_id", id)
		return err
	}

	s.logger.Info("complaint deleted", "complaint_id", id)
	s.publish(events.NewComplaintDeletedEvent(id))
	return nil
}

// AddResponse appends a comment. The complaint's existence is not checked
// first; a foreign key violation surfaces as a storage error.
func (s *Service) AddResponse(complaintID, userID int64, dto AddResponseDTO) (int64, error) {
	if err := dto.Validate(); err != nil {
		return 0, err
	}

	row := &complaintDatamodel.Response{
		ComplaintID: complaintID,
		UserID:      userID,
		Message:     dto.Message,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.CreateResponse(row); err != nil {
		s.logger.Error("failed to add response", "error", err, "complaint_id", complaintID, "user_id", userID)
		return 0, err
	}

	s.logger.Info("response added", "response_id", row.ID, "complaint_id", complaintID, "user_id", userID)
	s.publish(events.NewResponseAddedEvent(complaintID, row.ID, userID))

	return row.ID, nil
}

func (s *Service) ListResponses(complaintID int64) ([]*Response, error) {
	responses, err := s.repo.ListResponses(complaintID)
	if err != nil {
		s.logger.Error("failed to list responses", "error", err, "complaint_id", complaintID)
		return nil, err
	}
	return responses, nil
}

func (s *Service) publish(event events.BaseEvent) {
	if s.bus == nil {
		return
	}
	_ = s.bus.Publish(context.Background(), event)
}
