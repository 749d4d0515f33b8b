package drivers_search_get

import (
	"errors"
	"net/http"

	"brokerage/internal/entities"
	"brokerage/internal/generated/dto"
	"brokerage/internal/handlers/rest/response"
	"brokerage/internal/service/matching"
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
	values := r.URL.Query()

	query := entities.DriverAreaQuery{
		Source: values.Get("source"),
	}
	if destination := values.Get("destination"); destination != "" {
		query.Destination = &destination
	}
	if vehicleType := values.Get("vehicleType"); vehicleType != "" {
		v := entities.VehicleType(vehicleType)
		query.VehicleType = &v
	}

	drivers, err := h.service.SearchDriversByArea(r.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, matching.ErrMissingSource):
			response.Error(h.log, w, r, http.StatusBadRequest, "Source location is required", err)
		default:
			response.Error(h.log, w, r, http.StatusInternalServerError, "Failed to search drivers", err)
		}
		return
	}

	driversDTO := make([]dto.AreaDriver, 0, len(drivers))
	for _, driver := range drivers {
		driversDTO = append(driversDTO, dto.AreaDriver{
			ID:                      driver.ID,
			Name:                    driver.Name,
			Phone:                   driver.Phone,
			VehicleType:             driver.VehicleType.String(),
			Rating:                  driver.Rating.InexactFloat64(),
			ServiceArea:             driver.ServiceArea,
			Latitude:                driver.Latitude,
			Longitude:               driver.Longitude,
			CanDeliverToDestination: driver.CanDeliverToDestination,
		})
	}

	response.JSON(h.log, w, http.StatusOK, driversDTO)
}
