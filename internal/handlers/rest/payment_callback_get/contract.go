//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_callback_get_test
package payment_callback_get

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
	ReconcileOrder(ctx context.Context, orderID int64) (*entities.PaymentOutcome, error)
}
