//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cancel_delivery_post_test
package cancel_delivery_post

import (
	"context"

	"brokerage/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CancelOrder(ctx context.Context, orderID int64) error
}
