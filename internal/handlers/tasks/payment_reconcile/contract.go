//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_reconcile_test
package payment_reconcile

import (
	"context"
	"time"

	"brokerage/internal/entities"
	"brokerage/pkg/logger"
)

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type PaymentService interface {
	ListStalePending(ctx context.Context, olderThan time.Duration, limit uint64) ([]entities.PaymentOrder, error)
}

type Reconciler interface {
	ReconcileOrder(ctx context.Context, orderID int64) (*entities.PaymentOutcome, error)
}
