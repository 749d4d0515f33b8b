//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_status_test
package payment_status

import (
	"context"

	"brokerage/internal/entities"
)

type PaymentGateway interface {
	GetPaymentStatus(ctx context.Context, paymentRef string) (entities.GatewayPaymentStatus, error)
}

type PaymentService interface {
	ProcessPaymentResult(ctx context.Context, paymentRef string, success bool) (*entities.PaymentOrder, error)
	GetPaymentStatus(ctx context.Context, orderID int64) (*entities.PaymentOrder, error)
}

type (
	ExecuteFn      func(ctx context.Context, paymentRef string) (*entities.PaymentOrder, error)
	HandlerFactory interface {
		GetHandler(status entities.GatewayPaymentStatus) (ExecuteFn, error)
	}
)
