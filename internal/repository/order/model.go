package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderModifyDB struct {
	CustomerID  *int64
	Status      *string
	Total       *decimal.Decimal
	Source      *string
	Destination *string
}

type ProductModifyDB struct {
	OrderID     *int64
	ObjectType  *string
	Price       *decimal.Decimal
	Description *string
	ImagePath   *string
}

type DeliveryModifyDB struct {
	ID            *int64
	OrderID       *int64
	Status        *string
	ShippingDate  *time.Time
	DriverID      *int64
	StatusHistory *string
	UpdatedAt     *time.Time
}

type DeliveryStateDB struct {
	ID            int64
	OrderID       int64
	Status        string
	ShippingDate  time.Time
	DriverID      *int64
	StatusHistory *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	OrderStatus   string
}

type DeliveryViewDB struct {
	DeliveryID    int64
	OrderID       int64
	CustomerID    int64
	ObjectType    *string
	Description   *string
	ImagePath     *string
	Source        string
	Destination   string
	Status        string
	OrderStatus   string
	PaymentStatus string
	DriverID      *int64
	ShippingDate  time.Time
	StatusHistory *string
	UpdatedAt     time.Time
}
