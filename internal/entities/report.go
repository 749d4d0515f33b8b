package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PendingJob доставка, ожидающая водителя.
type PendingJob struct {
	OrderID     int64
	ObjectType  string
	ImagePath   *string
	Source      string
	Destination string
	Date        time.Time
}

type DeliveryStats struct {
	Pending   int64
	InTransit int64
	Delivered int64
	Canceled  int64
}

type RecentDelivery struct {
	OrderID      int64
	Status       DeliveryStatusType
	CreatedAt    time.Time
	CustomerName string
}

type TopDriver struct {
	Name        string
	VehicleType VehicleType
	Rating      decimal.Decimal
}

type Dashboard struct {
	Drivers          int64
	Customers        int64
	Users            int64
	Deliveries       DeliveryStats
	RecentDeliveries []RecentDelivery
	TopDrivers       []TopDriver
}
