package report

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderSummaryDB struct {
	OrderID        int64
	Date           time.Time
	OrderStatus    string
	Total          decimal.Decimal
	Source         string
	Destination    string
	ObjectType     *string
	Description    *string
	ImagePath      *string
	DeliveryID     int64
	DeliveryStatus string
	ShippingDate   time.Time
	DriverID       *int64
	PaymentStatus  string
}

type PendingJobDB struct {
	OrderID     int64
	ObjectType  *string
	ImagePath   *string
	Source      string
	Destination string
	Date        time.Time
}

type RecentDeliveryDB struct {
	OrderID      int64
	Status       string
	CreatedAt    time.Time
	CustomerName string
}

type TopDriverDB struct {
	Name        string
	VehicleType string
	Rating      decimal.Decimal
}
