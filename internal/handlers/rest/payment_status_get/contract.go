//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_status_get_test
package payment_status_get

import (
	"context"

	"brokerage/internal/entities"
	"brokerage/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetPaymentStatus(ctx context.Context, orderID int64) (*entities.PaymentOrder, error)
}
