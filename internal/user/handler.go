package user

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	errors "github.com/citizenserve/complaint-management/internal"
	"github.com/citizenserve/complaint-management/internal/auth"
	"github.com/citizenserve/complaint-management/internal/transport"
	"github.com/citizenserve/complaint-management/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	GetByID(userID int64) (*User, error)
	GetAll() ([]*User, error)
	Update(userID int64, dto UpdateUserDTO) error
	Delete(userID int64) error
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

// GetProfile handles GET /users/profile for the authenticated principal.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.UserFromContext(r.Context())
	if !ok || principal == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	u, err := h.Service.GetByID(principal.ID)
	if err != nil {
		if err == ErrNotFound {
			h.HandleServiceError(w, errors.ErrUserNotFound)
			return
		}
		h.Logger.Error("GetProfile: service error", "error", err, "user_id", principal.ID)
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.WriteJSON(w, http.StatusOK, u)
}

func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.GetAll()
	if err != nil {
		h.Logger.Error("GetUsers: service error", "error", err)
		h.WriteError(w, http.StatusInternalServerError, "failed to list users")
		return
	}

	h.WriteJSON(w, http.StatusOK, users)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userIDParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	u, err := h.Service.GetByID(userID)
	if err != nil {
		if err == ErrNotFound {
			h.HandleServiceError(w, errors.ErrUserNotFound)
			return
		}
		h.Logger.Error("GetUser: service error", "error", err, "user_id", userID)
		h.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.WriteJSON(w, http.StatusOK, u)
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userIDParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	var dto UpdateUserDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.Service.Update(userID, dto); err != nil {
		switch err {
		case ErrNotFound:
			h.HandleServiceError(w, errors.ErrUserNotFound)
		default:
			h.HandleServiceError(w, err)
		}
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "User updated successfully"})
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userIDParam(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	if err := h.Service.Delete(userID); err != nil {
		switch err {
		case ErrNotFound:
			h.HandleServiceError(w, errors.ErrUserNotFound)
		default:
			h.Logger.Error("DeleteUser: service error", "error", err, "user_id", userID)
			h.WriteError(w, http.StatusInternalServerError, "failed to delete user")
		}
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}

func (h *Handler) userIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
