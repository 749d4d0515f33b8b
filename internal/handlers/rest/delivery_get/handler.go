package delivery_get

import (
	"errors"
	"net/http"
	"strconv"
	"time"

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
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["orderId"]
	orderID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		response.Error(h.log, w, r, http.StatusBadRequest, "Invalid order ID", err)
		return
	}

	view, err := h.service.TrackDelivery(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID):
			response.Error(h.log, w, r, http.StatusBadRequest, "Invalid order ID", err)
		case errors.Is(err, order.ErrDeliveryNotFound):
			response.Error(h.log, w, r, http.StatusNotFound, "Delivery not found", err)
		default:
			response.Error(h.log, w, r, http.StatusInternalServerError, "Failed to track delivery", err)
		}
		return
	}

	history := make([]dto.StatusEntry, 0, len(view.StatusHistory))
	for _, entry := range view.StatusHistory {
		history = append(history, dto.StatusEntry{
			Status:    entry.Status.String(),
			Timestamp: entry.Timestamp,
		})
	}

	response.JSON(h.log, w, http.StatusOK, dto.DeliveryView{
		DeliveryID:    view.DeliveryID,
		OrderID:       view.OrderID,
		CustomerID:    view.CustomerID,
		ObjectType:    view.ObjectType,
		Description:   view.Description,
		ImageURL:      response.ImageURL(view.ImagePath),
		Source:        view.Source,
		Destination:   view.Destination,
		CurrentStatus: view.CurrentStatus.String(),
		OrderStatus:   view.OrderStatus.String(),
		PaymentStatus: view.PaymentStatus.String(),
		DriverID:      view.DriverID,
		ShippingDate:  view.ShippingDate.Format(time.DateOnly),
		StatusHistory: history,
		LastUpdated:   view.LastUpdated,
	})
}
