package complaint

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	errors "github.com/citizenserve/complaint-management/internal"
	"github.com/citizenserve/complaint-management/internal/auth"
	"github.com/citizenserve/complaint-management/internal/transport"
	"github.com/citizenserve/complaint-management/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CreateComplaint(userID int64, dto CreateComplaintDTO) (int64, error)
	ListComplaints(f Filters) ([]*Complaint, error)
	GetComplaintByID(id int64) (*Complaint, error)
	UpdateStatus(id int64, dto UpdateStatusDTO) error
	UpdatePriority(id int64, dto UpdatePriorityDTO) error
	AssignComplaint(id int64, agencyID int64) error
	DeleteComplaint(id int64) error
	AddResponse(complaintID, userID int64, dto AddResponseDTO) (int64, error)
	ListResponses(complaintID int64) ([]*Response, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

func (h *Handler) CreateComplaint(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.UserFromContext(r.Context())
	if !ok || principal == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateComplaintDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	complaintID, err := h.Service.CreateComplaint(principal.ID, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message":     "Complaint created successfully",
		"complaintId": complaintID,
	})
}

// ListComplaints is anonymous-readable. Filter fields accept comma-separated
// multi-values (OR within a field, AND across fields).
func (h *Handler) ListComplaints(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	complaints, err := h.Service.ListComplaints(filters)
	if err != nil {
		h.Logger.Error("ListComplaints: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list complaints")
		return
	}

	h.WriteJSON(w, http.StatusOK, complaints)
}

func (h *Handler) GetComplaint(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid complaint ID")
		return
	}

	c, err := h.Service.GetComplaintByID(id)
	if err != nil {
		switch err {
		case ErrNotFound:
			h.HandleServiceError(w, errors.ErrComplaintNotFound)
		default:
			h.Logger.Error("GetComplaint: service error", "error", err, "complaint_id", id)
			h.WriteError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	h.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid complaint ID")
		return
	}

	var dto UpdateStatusDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.UpdateStatus(id, dto); err != nil {
		switch err {
		case ErrNotFound:
			h.HandleServiceError(w, errors.ErrComplaintNotFound)
		default:
			h.Logger.Error("UpdateStatus: service error", "error", err, "complaint_id", id)
			h.WriteError(w, http.StatusInternalServerError, "failed to update complaint")
		}
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "Complaint updated successfully"})
}

func (h *Handler) UpdatePriority(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid complaint ID")
		return
	}

	var dto UpdatePriorityDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.UpdatePriority(id, dto); err != nil {
		switch err {
		case ErrNotFound:
			h.HandleServiceError(w, errors.ErrComplaintNotFound)
		default:
			h.HandleServiceError(w, err)
		}
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "Complaint priority updated"})
}

func (h *Handler) AssignComplaint(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid complaint ID")
		return
	}

	var dto AssignDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.AssignComplaint(id, dto.AgencyID); err != nil {
		switch err {
		case ErrNotFound:
			h.HandleServiceError(w, errors.ErrComplaintNotFound)
		default:
			h.Logger.Error("AssignComplaint: service error", "error", err, "complaint_id", id)
			h.WriteError(w, http.StatusInternalServerError, "failed to assign complaint")
		}
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "Complaint assigned successfully"})
}

func (h *Handler) DeleteComplaint(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid complaint ID")
		return
	}

	if err := h.Service.DeleteComplaint(id); err != nil {
		switch err {
		case ErrNotFound:
			h.HandleServiceError(w, errors.ErrComplaintNotFound)
		default:
			h.Logger.Error("DeleteComplaint: service error", "error", err, "complaint_id", id)
			h.WriteError(w, http.StatusInternalServerError, "failed to delete complaint")
		}
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "Complaint deleted successfully"})
}

func (h *Handler) AddResponse(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.UserFromContext(r.Context())
	if !ok || principal == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := h.idParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid complaint ID")
		return
	}

	var dto AddResponseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	responseID, err := h.Service.AddResponse(id, principal.ID, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message":    "Response added successfully",
		"responseId": responseID,
	})
}

func (h *Handler) ListResponses(w http.ResponseWriter, r *http.Request) {
	id, err := h.idParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid complaint ID")
		return
	}

	responses, err := h.Service.ListResponses(id)
	if err != nil {
		h.Logger.Error("ListResponses: service error", "error", err, "complaint_id", id)
		h.WriteError(w, http.StatusInternalServerError, "failed to list responses")
		return
	}

	h.WriteJSON(w, http.StatusOK, responses)
}

func (h *Handler) idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func parseFilters(r *http.Request) (Filters, error) {
	q := r.URL.Query()
	f := Filters{
		Status:   splitMulti(q.Get("status")),
		Category: splitMulti(q.Get("category")),
		Priority: splitMulti(q.Get("priority")),
	}

	if raw := q.Get("user_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Filters{}, errInvalidFilter("user_id")
		}
		f.UserID = &id
	}

	if raw := q.Get("assignedAgencyId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Filters{}, errInvalidFilter("assignedAgencyId")
		}
		f.AssignedAgencyID = &id
	}

	return f, nil
}

func splitMulti(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

type filterError string

func (e filterError) Error() string { return string(e) }

func errInvalidFilter(field string) error {
	return filterError("invalid filter value for " + field)
}
