//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=nearest_drivers_get_test
package nearest_drivers_get

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
	FindNearestDrivers(ctx context.Context, query entities.NearestDriversQuery) ([]entities.NearbyDriver, error)
}
