package dashboard_get

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
	dashboard, err := h.service.Dashboard(r.Context())
	if err != nil {
		response.Error(h.log, w, r, http.StatusInternalServerError, "Failed to load dashboard data", err)
		return
	}

	recent := make([]dto.DashboardRecentDelivery, 0, len(dashboard.RecentDeliveries))
	for _, d := range dashboard.RecentDeliveries {
		recent = append(recent, dto.DashboardRecentDelivery{
			OrderID:      d.OrderID,
			Status:       d.Status.String(),
			CreatedAt:    d.CreatedAt,
			CustomerName: d.CustomerName,
		})
	}

	top := make([]dto.DashboardTopDriver, 0, len(dashboard.TopDrivers))
	for _, d := range dashboard.TopDrivers {
		top = append(top, dto.DashboardTopDriver{
			Name:        d.Name,
			VehicleType: d.VehicleType.String(),
			Rating:      d.Rating.InexactFloat64(),
		})
	}

	response.JSON(h.log, w, http.StatusOK, dto.DashboardResponse{
		Success: true,
		Stats: dto.DashboardStats{
			Drivers:   dashboard.Drivers,
			Customers: dashboard.Customers,
			Users:     dashboard.Users,
			Deliveries: dto.DashboardDeliveryStats{
				Pending:   dashboard.Deliveries.Pending,
				InTransit: dashboard.Deliveries.InTransit,
				Delivered: dashboard.Deliveries.Delivered,
				Canceled:  dashboard.Deliveries.Canceled,
			},
		},
		RecentDeliveries: recent,
		TopDrivers:       top,
	})
}
