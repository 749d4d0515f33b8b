package delivery_status_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"brokerage/internal/generated/dto"
	"brokerage/internal/handlers/rest/response"
	"brokerage/internal/service/order"

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
	orderID, err := strconv.ParseInt(mux.Vars(r)["orderId"], 10, 64)
	if err != nil {
		response.Error(h.log, w, r, http.StatusBadRequest, "Invalid order ID", err)
		return
	}

	var statusDTO dto.UpdateStatusRequest
	err = json.NewDecoder(r.Body).Decode(&statusDTO)
	if err != nil {
		response.Error(h.log, w, r, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	change, err := h.service.UpdateDeliveryStatus(r.Context(), orderID, statusDTO.NewStatus)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID):
			response.Error(h.log, w, r, http.StatusBadRequest, "Invalid order ID", err)
		case errors.Is(err, order.ErrInvalidStatus):
			response.Error(h.log, w, r, http.StatusBadRequest, "Invalid status", err)
		case errors.Is(err, order.ErrDeliveryNotFound):
			response.Error(h.log, w, r, http.StatusNotFound, "Delivery not found", err)
		case errors.Is(err, order.ErrInvalidTransition):
			response.Error(h.log, w, r, http.StatusConflict, "Status transition is not allowed", err)
		default:
			response.Error(h.log, w, r, http.StatusInternalServerError, "Failed to update delivery status", err)
		}
		return
	}

	response.JSON(h.log, w, http.StatusOK, dto.UpdateStatusResponse{
		Success:   true,
		NewStatus: change.Status.String(),
		UpdatedAt: change.UpdatedAt,
	})
}
