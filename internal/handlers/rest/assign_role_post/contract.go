//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assign_role_post_test
package assign_role_post

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
	AssignRole(ctx context.Context, userID int64, rawRole string) error
}
