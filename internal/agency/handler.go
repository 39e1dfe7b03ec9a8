package agency

import (
	"encoding/json"
	"log/slog"
	"net/http"

	errors "github.com/citizenserve/complaint-management/internal"
	"github.com/citizenserve/complaint-management/internal/transport"
	"github.com/citizenserve/complaint-management/pkg/logger"
)

type ServiceAPI interface {
	ListAgencies() ([]*Agency, error)
	CreateAgency(dto CreateAgencyDTO) (*Agency, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

func (h *Handler) GetAgencies(w http.ResponseWriter, r *http.Request) {
	agencies, err := h.Service.ListAgencies()
	if err != nil {
		h.Logger.Error("GetAgencies: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list agencies")
		return
	}

	h.WriteJSON(w, http.StatusOK, agencies)
}

func (h *Handler) CreateAgency(w http.ResponseWriter, r *http.Request) {
	var dto CreateAgencyDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.CreateAgency(dto)
	if err != nil {
		switch err {
		case ErrNameTaken:
			h.HandleServiceError(w, errors.ErrAgencyNameTaken)
		case ErrUserNotFound:
			h.WriteError(w, http.StatusBadRequest, "User not found")
		case ErrUserNotAgencyRole:
			h.WriteError(w, http.StatusBadRequest, "User must have agency role")
		default:
			h.HandleServiceError(w, err)
		}
		return
	}

	payload := map[string]interface{}{
		"message":  "Agency created successfully",
		"agencyId": created.ID,
	}
	if dto.UserID != nil {
		payload["linkedUserId"] = *dto.UserID
	}

	h.WriteJSON(w, http.StatusCreated, payload)
}
