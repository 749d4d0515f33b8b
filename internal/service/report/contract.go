//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=report_test
package report

import (
	"context"

	"brokerage/internal/entities"
)

type Repository interface {
	ListCustomerOrders(ctx context.Context, filter entities.CustomerOrdersFilter) ([]entities.OrderSummary, error)
	ListPendingJobs(ctx context.Context, source *string) ([]entities.PendingJob, error)
	CountDrivers(ctx context.Context) (int64, error)
	CountCustomers(ctx context.Context) (int64, error)
	CountUsers(ctx context.Context) (int64, error)
	DeliveryStats(ctx context.Context) (entities.DeliveryStats, error)
	RecentDeliveries(ctx context.Context, limit uint64) ([]entities.RecentDelivery, error)
	TopDrivers(ctx context.Context, limit uint64) ([]entities.TopDriver, error)
}
