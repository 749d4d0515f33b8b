package driver

import "github.com/shopspring/decimal"

type DriverDB struct {
	ID          int64
	UserID      int64
	Name        string
	Phone       *string
	VehicleType string
	IsAvailable bool
	Latitude    *float64
	Longitude   *float64
	ServiceArea string
	Rating      decimal.Decimal
}
