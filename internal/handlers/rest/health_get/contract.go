//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=health_get_test
package health_get

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

type pinger interface {
	Ping(ctx context.Context) error
}
