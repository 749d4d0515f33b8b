package user_delete

import (
	"errors"
	"net/http"
	"strconv"

	"brokerage/internal/handlers/rest/response"
	"brokerage/internal/service/user"

	"github.com/gorilla/mux"
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
	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		response.Error(h.log, w, r, http.StatusBadRequest, "Invalid user ID", err)
		return
	}

	err = h.service.DeleteUser(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidUserID):
			response.Error(h.log, w, r, http.StatusBadRequest, "Invalid user ID", err)
		case errors.Is(err, user.ErrUserNotFound):
			response.Error(h.log, w, r, http.StatusNotFound, "User not found", err)
		case errors.Is(err, user.ErrUserHasOrders):
			response.Error(h.log, w, r, http.StatusConflict, "User has orders and cannot be deleted", err)
		default:
			response.Error(h.log, w, r, http.StatusInternalServerError, "Failed to delete user", err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
