package nearest_drivers_get

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

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
	query, err := parseQuery(r.URL.Query())
	if err != nil {
		response.Error(h.log, w, r, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	drivers, err := h.service.FindNearestDrivers(r.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, matching.ErrInvalidCoordinates):
			response.Error(h.log, w, r, http.StatusBadRequest, "Invalid coordinates", err)
		case errors.Is(err, matching.ErrInvalidRadius),
			errors.Is(err, matching.ErrInvalidLimit):
			response.Error(h.log, w, r, http.StatusBadRequest, "Invalid query parameters", err)
		default:
			response.Error(h.log, w, r, http.StatusInternalServerError, "Failed to fetch drivers", err)
		}
		return
	}

	driversDTO := make([]dto.NearbyDriver, 0, len(drivers))
	for _, driver := range drivers {
		driversDTO = append(driversDTO, dto.NearbyDriver{
			ID:          driver.ID,
			Name:        driver.Name,
			Phone:       driver.Phone,
			VehicleType: driver.VehicleType.String(),
			Rating:      driver.Rating.InexactFloat64(),
			Latitude:    driver.Latitude,
			Longitude:   driver.Longitude,
			DistanceKm:  driver.DistanceKm,
		})
	}

	response.JSON(h.log, w, http.StatusOK, driversDTO)
}

func parseQuery(values url.Values) (entities.NearestDriversQuery, error) {
	var query entities.NearestDriversQuery

	rawLatitude, rawLongitude := values.Get("latitude"), values.Get("longitude")
	if rawLatitude == "" || rawLongitude == "" {
		return query, errors.New("latitude and longitude are required")
	}

	var err error
	if query.Latitude, err = strconv.ParseFloat(rawLatitude, 64); err != nil {
		return query, fmt.Errorf("latitude: %w", err)
	}
	if query.Longitude, err = strconv.ParseFloat(rawLongitude, 64); err != nil {
		return query, fmt.Errorf("longitude: %w", err)
	}

	if raw := values.Get("radius"); raw != "" {
		radius, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return query, fmt.Errorf("radius: %w", err)
		}
		query.RadiusKm = &radius
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return query, fmt.Errorf("limit: %w", err)
		}
		query.Limit = &limit
	}

	return query, nil
}
