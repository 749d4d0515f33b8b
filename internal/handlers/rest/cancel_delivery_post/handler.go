package cancel_delivery_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"brokerage/internal/generated/dto"
	"brokerage/internal/handlers/rest/response"
	"brokerage/internal/service/order"
)

var errMissingOrderID = errors.New("orderId is required")

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
	var cancelDTO dto.CancelDeliveryRequest
	err := json.NewDecoder(r.Body).Decode(&cancelDTO)
	if err != nil {
		response.Error(h.log, w, r, http.StatusBadRequest, "Invalid order ID", err)
		return
	}

	orderID, err := parseOrderID(cancelDTO)
	if err != nil {
		response.Error(h.log, w, r, http.StatusBadRequest, "Invalid order ID", err)
		return
	}

	err = h.service.CancelOrder(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID):
			response.Error(h.log, w, r, http.StatusBadRequest, "Invalid order ID", err)
		case errors.Is(err, order.ErrDeliveryNotFound):
			response.Error(h.log, w, r, http.StatusNotFound, "Delivery not found", err)
		case errors.Is(err, order.ErrInvalidTransition):
			response.Error(h.log, w, r, http.StatusConflict, "Delivery can no longer be cancelled", err)
		default:
			response.Error(h.log, w, r, http.StatusInternalServerError, "Failed to cancel delivery", err)
		}
		return
	}

	response.JSON(h.log, w, http.StatusOK, dto.MessageResponse{
		Message: "Delivery cancelled successfully",
	})
}

// parseOrderID deliveryId принимается как старое имя orderId.
func parseOrderID(cancelDTO dto.CancelDeliveryRequest) (int64, error) {
	raw := cancelDTO.OrderID
	if raw == nil {
		raw = cancelDTO.DeliveryID
	}
	if raw == nil {
		return 0, errMissingOrderID
	}
	return raw.Int64()
}
