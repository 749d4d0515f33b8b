package matching

import (
	"math"
	"strings"

	"brokerage/internal/entities"
	"brokerage/pkg/geo"
)

const (
	defaultRadiusKm = 10.0
	defaultLimit    = 20
	maxLimit        = 20
	areaSearchLimit = 20
)

func resolveRadius(radius *float64) (float64, error) {
	if radius == nil {
		return defaultRadiusKm, nil
	}
	if math.IsNaN(*radius) || math.IsInf(*radius, 0) || *radius <= 0 {
		return 0, ErrInvalidRadius
	}
	return *radius, nil
}

func resolveLimit(limit *int) (int, error) {
	if limit == nil {
		return defaultLimit, nil
	}
	if *limit < 1 || *limit > maxLimit {
		return 0, ErrInvalidLimit
	}
	return *limit, nil
}

func validateNearestQuery(query entities.NearestDriversQuery) (float64, int, error) {
	if !geo.IsValidCoordinate(query.Latitude, query.Longitude) {
		return 0, 0, ErrInvalidCoordinates
	}

	radius, err := resolveRadius(query.RadiusKm)
	if err != nil {
		return 0, 0, err
	}

	limit, err := resolveLimit(query.Limit)
	if err != nil {
		return 0, 0, err
	}

	return radius, limit, nil
}

// containsFold регистронезависимое вхождение, как ILIKE '%s%' в хранилище.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
