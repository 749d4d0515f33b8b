//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"brokerage/internal/entities"
)

type Repository interface {
	Search(ctx context.Context, query string, limit uint64) ([]entities.User, error)
	UserExists(ctx context.Context, userID int64) (bool, error)
	HasRole(ctx context.Context, userID int64, role entities.Role) (bool, error)
	AssignRole(ctx context.Context, userID int64, role entities.Role) error
	Delete(ctx context.Context, userID int64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
