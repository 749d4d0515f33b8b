package payment_callback_get

import (
	"errors"
	"net/http"
	"strconv"

	"brokerage/internal/handlers/rest/response"
	"brokerage/internal/service/payment"
	"brokerage/internal/service/payment_status"

	"github.com/gorilla/mux"
)

// Handler возврат пользователя со страницы оплаты, платеж сверяется со шлюзом.
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

	outcome, err := h.service.ReconcileOrder(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidOrderID):
			response.Error(h.log, w, r, http.StatusBadRequest, "Invalid order ID", err)
		case errors.Is(err, payment.ErrOrderNotFound),
			errors.Is(err, payment.ErrPaymentNotFound):
			response.Error(h.log, w, r, http.StatusNotFound, "Order not found", err)
		case errors.Is(err, payment_status.ErrPaymentNotInitiated):
			response.Error(h.log, w, r, http.StatusConflict, "Payment was not initiated", err)
		default:
			response.Error(h.log, w, r, http.StatusInternalServerError, "Failed to verify payment", err)
		}
		return
	}

	response.JSON(h.log, w, http.StatusOK, response.PaymentOutcome(outcome))
}
