//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_delete_test
package user_delete

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
	DeleteUser(ctx context.Context, userID int64) error
}
