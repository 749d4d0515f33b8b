package payment_webhook

import (
	"errors"
	"net/http"

	"brokerage/internal/entities"
	"brokerage/internal/handlers/rest/response"
	"brokerage/internal/service/payment"
	"brokerage/internal/service/payment_status"
)

const paymentRefParam = "payment_ref"

// Handler шлюз вызывает webhook как GET, так и POST. Статус в запросе не
// используется, он перепроверяется на шлюзе.
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
	// FormValue читает и query, и urlencoded тело POST
	paymentRef := r.FormValue(paymentRefParam)

	outcome, err := h.service.ProcessPaymentStatusChange(r.Context(), entities.PaymentStatusEvent{
		PaymentRef: paymentRef,
	})
	if err != nil {
		switch {
		case errors.Is(err, payment_status.ErrMissingPaymentRef),
			errors.Is(err, payment.ErrMissingPaymentRef):
			response.Error(h.log, w, r, http.StatusBadRequest, "Payment reference is required", err)
		case errors.Is(err, payment.ErrPaymentNotFound):
			response.Error(h.log, w, r, http.StatusNotFound, "Payment not found", err)
		default:
			response.Error(h.log, w, r, http.StatusInternalServerError, "Failed to process payment", err)
		}
		return
	}

	h.log.Info("payment webhook processed")
	response.JSON(h.log, w, http.StatusOK, response.PaymentOutcome(outcome))
}
