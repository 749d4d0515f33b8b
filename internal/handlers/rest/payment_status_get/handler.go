package payment_status_get

import (
	"errors"
	"net/http"
	"strconv"

	"brokerage/internal/handlers/rest/response"
	"brokerage/internal/service/payment"

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

	order, err := h.service.GetPaymentStatus(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidOrderID):
			response.Error(h.log, w, r, http.StatusBadRequest, "Invalid order ID", err)
		case errors.Is(err, payment.ErrOrderNotFound):
			response.Error(h.log, w, r, http.StatusNotFound, "Order not found", err)
		default:
			response.Error(h.log, w, r, http.StatusInternalServerError, "Failed to fetch payment status", err)
		}
		return
	}

	response.JSON(h.log, w, http.StatusOK, response.PaymentStatus(order))
}
