package delivery_assign_post

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

	var assignDTO dto.AssignDriverRequest
	err = json.NewDecoder(r.Body).Decode(&assignDTO)
	if err != nil {
		response.Error(h.log, w, r, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	change, err := h.service.AssignDriver(r.Context(), orderID, assignDTO.DriverID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID):
			response.Error(h.log, w, r, http.StatusBadRequest, "Invalid order ID", err)
		case errors.Is(err, order.ErrInvalidDriverID):
			response.Error(h.log, w, r, http.StatusBadRequest, "Invalid driver ID", err)
		case errors.Is(err, order.ErrDriverNotFound):
			response.Error(h.log, w, r, http.StatusNotFound, "Driver not found", err)
		case errors.Is(err, order.ErrDeliveryNotFound):
			response.Error(h.log, w, r, http.StatusNotFound, "Delivery not found", err)
		case errors.Is(err, order.ErrInvalidTransition),
			errors.Is(err, order.ErrDriverAlreadyAssigned):
			response.Error(h.log, w, r, http.StatusConflict, "Driver cannot be assigned", err)
		default:
			response.Error(h.log, w, r, http.StatusInternalServerError, "Failed to assign driver", err)
		}
		return
	}

	response.JSON(h.log, w, http.StatusOK, dto.AssignDriverResponse{
		OrderID:   change.OrderID,
		DriverID:  change.DriverID,
		Status:    change.Status.String(),
		UpdatedAt: change.UpdatedAt,
	})
}
