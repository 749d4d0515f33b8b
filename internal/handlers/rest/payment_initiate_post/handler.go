package payment_initiate_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"brokerage/internal/generated/dto"
	"brokerage/internal/handlers/rest/response"
	"brokerage/internal/service/payment"
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
	var initiateDTO dto.PaymentInitiateRequest
	err := json.NewDecoder(r.Body).Decode(&initiateDTO)
	if err != nil {
		response.Error(h.log, w, r, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if initiateDTO.OrderID == nil {
		response.Error(h.log, w, r, http.StatusBadRequest, "Order ID is required", errMissingOrderID)
		return
	}

	orderID, err := initiateDTO.OrderID.Int64()
	if err != nil {
		response.Error(h.log, w, r, http.StatusBadRequest, "Invalid order ID", err)
		return
	}

	session, err := h.service.InitiatePayment(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidOrderID):
			response.Error(h.log, w, r, http.StatusBadRequest, "Invalid order ID", err)
		case errors.Is(err, payment.ErrInvalidAmount):
			response.Error(h.log, w, r, http.StatusBadRequest, "Invalid order amount", err)
		case errors.Is(err, payment.ErrOrderNotFound):
			response.Error(h.log, w, r, http.StatusNotFound, "Order not found", err)
		case errors.Is(err, payment.ErrOrderAlreadyPaid):
			response.Error(h.log, w, r, http.StatusConflict, "Order already paid", err)
		case errors.Is(err, payment.ErrOrderNotPayable):
			response.Error(h.log, w, r, http.StatusConflict, "Order cannot be paid", err)
		case errors.Is(err, payment.ErrUpstreamFailure):
			response.Error(h.log, w, r, http.StatusInternalServerError, "Payment gateway error", err)
		default:
			response.Error(h.log, w, r, http.StatusInternalServerError, "Failed to initiate payment", err)
		}
		return
	}

	response.JSON(h.log, w, http.StatusOK, dto.PaymentInitiateResponse{
		Success:    true,
		PaymentURL: session.PaymentURL,
		PaymentID:  session.PaymentRef,
	})
}
