package entities

import (
	"io"
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID            int64
	CustomerID    int64
	Date          time.Time
	Status        OrderStatusType
	Total         decimal.Decimal
	Source        string
	Destination   string
	PaymentID     *string
	PaymentStatus PaymentStatusType
}

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "pending"
	OrderCancelled OrderStatusType = "cancelled"
	OrderDelivered OrderStatusType = "delivered"
)

func (s OrderStatusType) String() string {
	return string(s)
}

type OrderModify struct {
	ID          *int64
	CustomerID  *int64
	Status      *OrderStatusType
	Total       *decimal.Decimal
	Source      *string
	Destination *string
}

type ProductModify struct {
	OrderID     *int64
	ObjectType  *string
	Price       *decimal.Decimal
	Description *string
	ImagePath   *string
}

// Image загруженный файл до сохранения в хранилище.
type Image struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

// NewOrder входные данные CreateOrder в том виде, в каком они пришли от клиента.
type NewOrder struct {
	CustomerID   int64
	ObjectType   string
	Source       string
	Destination  string
	ShippingDate string
	Description  *string
	Image        *Image
}

type CreatedOrder struct {
	OrderID    int64
	DeliveryID int64
	ImagePath  *string
}

// OrderSummary строка истории заказов клиента.
type OrderSummary struct {
	OrderID        int64
	Date           time.Time
	OrderStatus    OrderStatusType
	Total          decimal.Decimal
	Source         string
	Destination    string
	ObjectType     string
	Description    *string
	ImagePath      *string
	DeliveryID     int64
	DeliveryStatus DeliveryStatusType
	ShippingDate   time.Time
	DriverID       *int64
	PaymentStatus  PaymentStatusType
}

type CustomerOrdersFilter struct {
	CustomerID     int64
	DeliveryStatus *DeliveryStatusType
}
