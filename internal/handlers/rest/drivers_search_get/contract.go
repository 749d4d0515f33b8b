//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=drivers_search_get_test
package drivers_search_get

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
	SearchDriversByArea(ctx context.Context, query entities.DriverAreaQuery) ([]entities.AreaDriver, error)
}
