//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=matching_test
package matching

import (
	"context"

	"brokerage/internal/entities"
)

type Repository interface {
	ListAvailableWithPosition(ctx context.Context, filter entities.DriverFilter) ([]entities.Driver, error)
	SearchAvailableByArea(ctx context.Context, filter entities.DriverFilter) ([]entities.Driver, error)
}
