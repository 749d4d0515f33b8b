//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notifier_test
package notifier

import (
	"context"

	"brokerage/pkg/logger"
)

type publisher interface {
	Publish(ctx context.Context, key string, value []byte) error
}

type broadcaster interface {
	Broadcast(orderID int64, messageType string, data any) bool
}

type notifierLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}
