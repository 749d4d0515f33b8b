//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"
	"time"

	"brokerage/internal/entities"
)

type Repository interface {
	GetOrderForPayment(ctx context.Context, orderID int64) (*entities.PaymentOrder, error)
	SetPaymentReference(ctx context.Context, orderID int64, paymentRef string, initiatedAt time.Time) error
	GetByReferenceForUpdate(ctx context.Context, paymentRef string) (*entities.PaymentOrder, error)
	UpdatePaymentStatus(ctx context.Context, orderID int64, status entities.PaymentStatusType) error
	ListStalePending(ctx context.Context, initiatedBefore time.Time, limit uint64) ([]entities.PaymentOrder, error)
}

type Gateway interface {
	InitPayment(ctx context.Context, request entities.PaymentRequest) (*entities.PaymentSession, error)
}

type DeliveryService interface {
	TransitionDelivery(ctx context.Context, orderID int64, status entities.DeliveryStatusType) (*entities.DeliveryStatusChange, error)
}

type Notifier interface {
	Notify(ctx context.Context, change entities.DeliveryStatusChange)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
