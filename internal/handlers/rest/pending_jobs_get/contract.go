//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pending_jobs_get_test
package pending_jobs_get

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
	ListPendingJobs(ctx context.Context, source *string) ([]entities.PendingJob, error)
}
