package order

import (
	"context"
	"errors"
	"fmt"

	"brokerage/internal/entities"
	"brokerage/internal/repository"
	"brokerage/internal/service/order"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) CreateOrder(ctx context.Context, orderModifyEntity entities.OrderModify) (int64, error) {
	orderModifyModel := FromDomainOrderModify(&orderModifyEntity)
	query := `INSERT INTO customerorder (customer_id, status, total, source, destination)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		orderModifyModel.CustomerID,
		orderModifyModel.Status,
		orderModifyModel.Total,
		orderModifyModel.Source,
		orderModifyModel.Destination,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return 0, order.ErrCustomerNotFound
		}
		return 0, fmt.Errorf("unexpected order repository create order error: %w", err)
	}

	return id, nil
}

func (r *Repository) CreateProduct(ctx context.Context, productModifyEntity entities.ProductModify) (int64, error) {
	productModifyModel := FromDomainProductModify(&productModifyEntity)
	query := `INSERT INTO product (customer_order_id, object_type, price, description, image_path)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		productModifyModel.OrderID,
		productModifyModel.ObjectType,
		productModifyModel.Price,
		productModifyModel.Description,
		productModifyModel.ImagePath,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository create product error: %w", err)
	}

	return id, nil
}

func (r *Repository) CreateDelivery(ctx context.Context, deliveryModifyEntity entities.DeliveryModify) (int64, error) {
	deliveryModifyModel, err := FromDomainDeliveryModify(&deliveryModifyEntity)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository create delivery error: %w", err)
	}

	// status_history остается NULL до первого перехода
	query := `INSERT INTO delivery (order_id, status, shipping_date)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int64
	err = r.querier.QueryRow(
		ctx,
		query,
		deliveryModifyModel.OrderID,
		deliveryModifyModel.Status,
		deliveryModifyModel.ShippingDate,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository create delivery error: %w", err)
	}

	return id, nil
}

// GetDeliveryForUpdate блокирует строки доставки и заказа до конца транзакции.
func (r *Repository) GetDeliveryForUpdate(ctx context.Context, orderID int64) (*entities.DeliveryState, error) {
	query := `SELECT d.id, d.order_id, d.status, d.shipping_date, d.driver_id,
			d.status_history, d.created_at, d.updated_at, co.status
		FROM delivery d
		JOIN customerorder co ON co.id = d.order_id
		WHERE d.order_id = $1
		FOR UPDATE`

	var stateModel DeliveryStateDB
	err := r.querier.QueryRow(ctx, query, orderID).
		Scan(
			&stateModel.ID,
			&stateModel.OrderID,
			&stateModel.Status,
			&stateModel.ShippingDate,
			&stateModel.DriverID,
			&stateModel.StatusHistory,
			&stateModel.CreatedAt,
			&stateModel.UpdatedAt,
			&stateModel.OrderStatus,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get delivery for update error: %w", err)
	}

	state, err := ToDomainDeliveryState(&stateModel)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get delivery for update error: %w", err)
	}
	return state, nil
}

func (r *Repository) UpdateDelivery(ctx context.Context, deliveryModifyEntity entities.DeliveryModify) error {
	deliveryModifyModel, err := FromDomainDeliveryModify(&deliveryModifyEntity)
	if err != nil {
		return fmt.Errorf("unexpected order repository update delivery error: %w", err)
	}

	builder := qb.
		Update("delivery")

	// опционные поля
	if deliveryModifyModel.Status != nil {
		builder = builder.Set("status", deliveryModifyModel.Status)
	}
	if deliveryModifyModel.DriverID != nil {
		builder = builder.Set("driver_id", deliveryModifyModel.DriverID)
	}
	if deliveryModifyModel.StatusHistory != nil {
		builder = builder.Set("status_history", deliveryModifyModel.StatusHistory)
	}
	if deliveryModifyModel.UpdatedAt != nil {
		builder = builder.Set("updated_at", deliveryModifyModel.UpdatedAt)
	} else {
		builder = builder.Set("updated_at", sq.Expr("NOW()"))
	}

	builder = builder.Where(sq.Eq{"id": deliveryModifyModel.ID})

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected order repository update delivery error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return order.ErrDriverNotFound
		}
		return fmt.Errorf("unexpected order repository update delivery error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return order.ErrDeliveryNotFound
	}

	return nil
}

func (r *Repository) UpdateOrderStatus(ctx context.Context, orderID int64, status entities.OrderStatusType) error {
	query := `UPDATE customerorder SET status = $1 WHERE id = $2`

	tag, err := r.querier.Exec(ctx, query, status.String(), orderID)
	if err != nil {
		return fmt.Errorf("unexpected order repository update order status error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return order.ErrDeliveryNotFound
	}

	return nil
}

func (r *Repository) GetDeliveryView(ctx context.Context, orderID int64) (*entities.DeliveryView, error) {
	query := `SELECT d.id, co.id, co.customer_id, p.object_type, p.description, p.image_path,
			co.source, co.destination, d.status, co.status, co.payment_status,
			d.driver_id, d.shipping_date, d.status_history, d.updated_at
		FROM delivery d
		JOIN customerorder co ON co.id = d.order_id
		LEFT JOIN LATERAL (
			SELECT object_type, description, image_path
			FROM product
			WHERE customer_order_id = co.id
			ORDER BY id
			LIMIT 1
		) p ON TRUE
		WHERE d.order_id = $1`

	var viewModel DeliveryViewDB
	err := r.querier.QueryRow(ctx, query, orderID).
		Scan(
			&viewModel.DeliveryID,
			&viewModel.OrderID,
			&viewModel.CustomerID,
			&viewModel.ObjectType,
			&viewModel.Description,
			&viewModel.ImagePath,
			&viewModel.Source,
			&viewModel.Destination,
			&viewModel.Status,
			&viewModel.OrderStatus,
			&viewModel.PaymentStatus,
			&viewModel.DriverID,
			&viewModel.ShippingDate,
			&viewModel.StatusHistory,
			&viewModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get delivery view error: %w", err)
	}

	view, err := ToDomainDeliveryView(&viewModel)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get delivery view error: %w", err)
	}
	return view, nil
}

func (r *Repository) DriverExists(ctx context.Context, driverID int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM drivers WHERE id = $1)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, driverID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected order repository driver exists error: %w", err)
	}

	return exists, nil
}
