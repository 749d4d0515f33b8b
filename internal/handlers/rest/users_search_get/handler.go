package users_search_get

import (
	"net/http"

	"brokerage/internal/generated/dto"
	"brokerage/internal/handlers/rest/response"
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
	users, err := h.service.SearchUsers(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		response.Error(h.log, w, r, http.StatusInternalServerError, "Failed to search users", err)
		return
	}

	usersDTO := make([]dto.User, 0, len(users))
	for _, u := range users {
		usersDTO = append(usersDTO, dto.User{
			ID:       u.ID,
			Name:     u.Name,
			Email:    u.Email,
			Phone:    u.Phone,
			Location: u.Location,
			IsDriver: u.IsDriver,
			IsAdmin:  u.IsAdmin,
		})
	}

	response.JSON(h.log, w, http.StatusOK, usersDTO)
}
