package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatusType string

const (
	PaymentUnpaid  PaymentStatusType = "unpaid"
	PaymentPending PaymentStatusType = "pending"
	PaymentPaid    PaymentStatusType = "paid"
	PaymentFailed  PaymentStatusType = "failed"
)

func (s PaymentStatusType) String() string {
	return string(s)
}

// GatewayPaymentStatus статус платежа на стороне платежного шлюза.
type GatewayPaymentStatus string

const (
	GatewayPaymentCompleted GatewayPaymentStatus = "completed"
	GatewayPaymentPending   GatewayPaymentStatus = "pending"
	GatewayPaymentFailed    GatewayPaymentStatus = "failed"
	GatewayPaymentExpired   GatewayPaymentStatus = "expired"
	GatewayPaymentCanceled  GatewayPaymentStatus = "canceled"
)

func (s GatewayPaymentStatus) String() string {
	return string(s)
}

// PaymentOrder заказ с точки зрения оплаты.
type PaymentOrder struct {
	OrderID            int64
	CustomerID         int64
	CustomerName       string
	CustomerEmail      string
	Total              decimal.Decimal
	PaymentRef         *string
	PaymentStatus      PaymentStatusType
	PaymentInitiatedAt *time.Time
	DeliveryStatus     DeliveryStatusType
}

type PaymentRequest struct {
	OrderID        int64
	CustomerID     int64
	AmountMillimes int64
	Description    string
	CustomerName   string
	CustomerEmail  string
}

type PaymentSession struct {
	PaymentURL string
	PaymentRef string
}

type PaymentStatusEvent struct {
	PaymentRef string
	Status     GatewayPaymentStatus
}

type PaymentOutcome struct {
	PaymentRef    string
	GatewayStatus GatewayPaymentStatus
	Order         *PaymentOrder
}
