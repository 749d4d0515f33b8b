package assign_role_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"brokerage/internal/generated/dto"
	"brokerage/internal/handlers/rest/response"
	"brokerage/internal/service/user"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var roleDTO dto.AssignRoleRequest
	err := json.NewDecoder(r.Body).Decode(&roleDTO)
	if err != nil {
		response.Error(h.log, w, r, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	err = h.service.AssignRole(r.Context(), roleDTO.UserID, roleDTO.Role)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidUserID):
			response.Error(h.log, w, r, http.StatusBadRequest, "Invalid user ID", err)
		case errors.Is(err, user.ErrInvalidRole):
			response.Error(h.log, w, r, http.StatusBadRequest, "Invalid role", err)
		case errors.Is(err, user.ErrUserNotFound):
			response.Error(h.log, w, r, http.StatusNotFound, "User not found", err)
		case errors.Is(err, user.ErrRoleAlreadyAssigned):
			response.Error(h.log, w, r, http.StatusConflict, "User already has this role", err)
		default:
			response.Error(h.log, w, r, http.StatusInternalServerError, "Failed to assign role", err)
		}
		return
	}

	response.JSON(h.log, w, http.StatusOK, dto.SuccessResponse{Success: true})
}
