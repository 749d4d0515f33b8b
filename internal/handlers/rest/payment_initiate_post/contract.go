//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_initiate_post_test
package payment_initiate_post

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
	InitiatePayment(ctx context.Context, orderID int64) (*entities.PaymentSession, error)
}
