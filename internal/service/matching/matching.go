package matching

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"brokerage/internal/entities"
	"brokerage/internal/pkg/config"
	"brokerage/pkg/geo"
)

type Matching struct {
	repository          Repository
	maxActiveDeliveries int
}

func New(repository Repository, cfg *config.Matching) *Matching {
	return &Matching{
		repository:          repository,
		maxActiveDeliveries: cfg.MaxActiveDeliveries,
	}
}

// FindNearestDrivers свободные водители строго ближе radius км, ближайшие первыми.
func (m *Matching) FindNearestDrivers(ctx context.Context, query entities.NearestDriversQuery) ([]entities.NearbyDriver, error) {
	radius, limit, err := validateNearestQuery(query)
	if err != nil {
		return nil, err
	}

	drivers, err := m.repository.ListAvailableWithPosition(ctx, entities.DriverFilter{
		WithPositionOnly:    true,
		MaxActiveDeliveries: m.maxActiveDeliveries,
	})
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}

	nearby := make([]entities.NearbyDriver, 0, len(drivers))
	for _, driver := range drivers {
		if !driver.IsAvailable || driver.Latitude == nil || driver.Longitude == nil {
			continue
		}

		distance := geo.GreatCircleKm(query.Latitude, query.Longitude, *driver.Latitude, *driver.Longitude)
		if distance >= radius {
			continue
		}
		nearby = append(nearby, entities.NearbyDriver{Driver: driver, DistanceKm: distance})
	}

	// при равном расстоянии сохраняется порядок id из хранилища
	slices.SortStableFunc(nearby, func(a, b entities.NearbyDriver) int {
		switch {
		case a.DistanceKm < b.DistanceKm:
			return -1
		case a.DistanceKm > b.DistanceKm:
			return 1
		default:
			return 0
		}
	})

	if len(nearby) > limit {
		nearby = nearby[:limit]
	}
	return nearby, nil
}

func (m *Matching) SearchDriversByArea(ctx context.Context, query entities.DriverAreaQuery) ([]entities.AreaDriver, error) {
	source := strings.TrimSpace(query.Source)
	if source == "" {
		return nil, ErrMissingSource
	}

	filter := entities.DriverFilter{
		ServiceArea:         &source,
		MaxActiveDeliveries: m.maxActiveDeliveries,
		Limit:               areaSearchLimit,
	}
	if query.VehicleType != nil && !query.VehicleType.IsWildcard() {
		filter.VehicleType = query.VehicleType
	}

	drivers, err := m.repository.SearchAvailableByArea(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search drivers: %w", err)
	}

	var destination string
	if query.Destination != nil {
		destination = strings.TrimSpace(*query.Destination)
	}

	result := make([]entities.AreaDriver, 0, len(drivers))
	for _, driver := range drivers {
		result = append(result, entities.AreaDriver{
			Driver:                  driver,
			CanDeliverToDestination: destination == "" || containsFold(driver.ServiceArea, destination),
		})
	}
	return result, nil
}
