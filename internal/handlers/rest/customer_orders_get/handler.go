package customer_orders_get

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"brokerage/internal/entities"
	"brokerage/internal/generated/dto"
	"brokerage/internal/handlers/rest/response"
	"brokerage/internal/service/report"

	"github.com/gorilla/mux"
)

// Handler история заказов клиента. inTransitOnly оставляет только заказы в пути.
type Handler struct {
	log           handlerLogger
	service       Service
	inTransitOnly bool
}

func New(log handlerLogger, service Service) *Handler {
	return newHandler(log, service, false)
}

func NewInTransit(log handlerLogger, service Service) *Handler {
	return newHandler(log, service, true)
}

func newHandler(log handlerLogger, service Service, inTransitOnly bool) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:           handlerLog,
		service:       service,
		inTransitOnly: inTransitOnly,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	customerID, err := strconv.ParseInt(mux.Vars(r)["customerId"], 10, 64)
	if err != nil {
		response.Error(h.log, w, r, http.StatusBadRequest, "Invalid customer ID", err)
		return
	}

	orders, err := h.list(r.Context(), customerID)
	if err != nil {
		switch {
		case errors.Is(err, report.ErrInvalidCustomerID):
			response.Error(h.log, w, r, http.StatusBadRequest, "Invalid customer ID", err)
		default:
			response.Error(h.log, w, r, http.StatusInternalServerError, "Failed to fetch orders", err)
		}
		return
	}

	ordersDTO := make([]dto.OrderSummary, 0, len(orders))
	for _, o := range orders {
		ordersDTO = append(ordersDTO, dto.OrderSummary{
			OrderID:        o.OrderID,
			Date:           o.Date,
			Status:         o.OrderStatus.String(),
			Total:          o.Total.StringFixed(3),
			Source:         o.Source,
			Destination:    o.Destination,
			ObjectType:     o.ObjectType,
			Description:    o.Description,
			ImageURL:       response.ImageURL(o.ImagePath),
			DeliveryID:     o.DeliveryID,
			DeliveryStatus: o.DeliveryStatus.String(),
			ShippingDate:   o.ShippingDate.Format(time.DateOnly),
			DriverID:       o.DriverID,
			PaymentStatus:  o.PaymentStatus.String(),
		})
	}

	response.JSON(h.log, w, http.StatusOK, ordersDTO)
}

func (h *Handler) list(ctx context.Context, customerID int64) ([]entities.OrderSummary, error) {
	if h.inTransitOnly {
		return h.service.ListInTransitOrders(ctx, customerID)
	}
	return h.service.ListCustomerOrders(ctx, customerID)
}
