package events

import (
	"context"
	"log/slog"
	"time"

	pkgLogger "github.com/citizenserve/complaint-management/pkg/logger"
	"github.com/google/uuid"
)

const (
	ComplaintCreated       = "complaint.created"
	ComplaintStatusChanged = "complaint.status_changed"
	ComplaintAssigned      = "complaint.assigned"
	ComplaintDeleted       = "complaint.deleted"
	ResponseAdded          = "complaint.response_added"
)

func NewComplaintCreatedEvent(complaintID, userID int64, category string) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      ComplaintCreated,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"complaint_id": complaintID,
			"user_id":      userID,
			"category":     category,
		},
	}
}

func NewComplaintStatusChangedEvent(complaintID int64, status string) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      ComplaintStatusChanged,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"complaint_id": complaintID,
			"status":       status,
		},
	}
}

func NewComplaintAssignedEvent(complaintID, agencyID int64) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      ComplaintAssigned,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"complaint_id": complaintID,
			"agency_id":    agencyID,
		},
	}
}

func NewComplaintDeletedEvent(complaintID int64) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      ComplaintDeleted,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"complaint_id": complaintID,
		},
	}
}

func NewResponseAddedEvent(complaintID, responseID, userID int64) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      ResponseAdded,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"complaint_id": complaintID,
			"response_id":  responseID,
			"user_id":      userID,
		},
	}
}

// RegisterAuditSubscribers attaches a structured-log audit trail for every
// complaint lifecycle event.
func RegisterAuditSubscribers(bus *EventBus, logger *slog.Logger) {
	audit := func(ctx context.Context, event Event) error {
		pkgLogger.From(ctx).Info("audit",
			"event_type", event.EventType(),
			"event_id", event.EventID(),
			"occurred_at", event.OccurredAt(),
			"payload", event.Payload())
		return nil
	}

	for _, eventType := range []string{
		ComplaintCreated,
		ComplaintStatusChanged,
		ComplaintAssigned,
		ComplaintDeleted,
		ResponseAdded,
	} {
		bus.Subscribe(eventType, audit)
	}

	logger.Info("audit subscribers registered")
}
