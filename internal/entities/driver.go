package entities

import (
	"strings"

	"github.com/shopspring/decimal"
)

type VehicleType string

func (v VehicleType) String() string {
	return string(v)
}

// IsWildcard значения фильтра, которые означают "любой транспорт".
func (v VehicleType) IsWildcard() bool {
	switch strings.ToLower(strings.TrimSpace(string(v))) {
	case "", "all", "any", "*":
		return true
	default:
		return false
	}
}

type Driver struct {
	ID          int64
	UserID      int64
	Name        string
	Phone       *string
	VehicleType VehicleType
	IsAvailable bool
	Latitude    *float64
	Longitude   *float64
	ServiceArea string
	Rating      decimal.Decimal
}

type NearbyDriver struct {
	Driver
	DistanceKm float64
}

type AreaDriver struct {
	Driver
	CanDeliverToDestination bool
}

type NearestDriversQuery struct {
	Latitude  float64
	Longitude float64
	RadiusKm  *float64
	Limit     *int
}

type DriverAreaQuery struct {
	Source      string
	Destination *string
	VehicleType *VehicleType
}

// DriverFilter условия выборки свободных водителей на уровне хранилища.
type DriverFilter struct {
	ServiceArea         *string
	VehicleType         *VehicleType
	WithPositionOnly    bool
	MaxActiveDeliveries int
	Limit               uint64
}
