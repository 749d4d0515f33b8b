//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"brokerage/internal/entities"
)

type Repository interface {
	CreateOrder(ctx context.Context, orderModify entities.OrderModify) (int64, error)
	CreateProduct(ctx context.Context, productModify entities.ProductModify) (int64, error)
	CreateDelivery(ctx context.Context, deliveryModify entities.DeliveryModify) (int64, error)
	GetDeliveryForUpdate(ctx context.Context, orderID int64) (*entities.DeliveryState, error)
	UpdateDelivery(ctx context.Context, deliveryModify entities.DeliveryModify) error
	UpdateOrderStatus(ctx context.Context, orderID int64, status entities.OrderStatusType) error
	GetDeliveryView(ctx context.Context, orderID int64) (*entities.DeliveryView, error)
	DriverExists(ctx context.Context, driverID int64) (bool, error)
}

type IdentityGateway interface {
	UserExists(ctx context.Context, userID int64) (bool, error)
}

type FileStorage interface {
	Save(ctx context.Context, image entities.Image) (string, error)
	Remove(ctx context.Context, path string) error
}

type Notifier interface {
	Notify(ctx context.Context, change entities.DeliveryStatusChange)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
