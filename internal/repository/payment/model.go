package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentOrderDB struct {
	OrderID            int64
	CustomerID         int64
	CustomerName       string
	CustomerEmail      string
	Total              decimal.Decimal
	PaymentRef         *string
	PaymentStatus      string
	PaymentInitiatedAt *time.Time
	DeliveryStatus     string
}
