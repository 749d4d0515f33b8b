package report

import (
	"context"
	"fmt"

	"brokerage/internal/entities"
	"brokerage/internal/repository"

	sq "github.com/Masterminds/squirrel"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const firstProductJoin = `LATERAL (
		SELECT object_type, description, image_path
		FROM product
		WHERE customer_order_id = co.id
		ORDER BY id
		LIMIT 1
	) p ON TRUE`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) ListCustomerOrders(ctx context.Context, filter entities.CustomerOrdersFilter) ([]entities.OrderSummary, error) {
	builder := qb.
		Select(
			"co.id", "co.date", "co.status", "co.total", "co.source", "co.destination",
			"p.object_type", "p.description", "p.image_path",
			"d.id", "d.status", "d.shipping_date", "d.driver_id", "co.payment_status",
		).
		From("customerorder co").
		Join("delivery d ON d.order_id = co.id").
		LeftJoin(firstProductJoin).
		Where(sq.Eq{"co.customer_id": filter.CustomerID})

	// опционные поля
	if filter.DeliveryStatus != nil {
		builder = builder.Where(sq.Eq{"d.status": filter.DeliveryStatus.String()})
	}

	builder = builder.OrderBy("co.date DESC", "co.id DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository list customer orders error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository list customer orders error: %w", err)
	}
	defer rows.Close()

	orders := make([]entities.OrderSummary, 0, 8)
	for rows.Next() {
		var orderModel OrderSummaryDB
		err := rows.Scan(
			&orderModel.OrderID,
			&orderModel.Date,
			&orderModel.OrderStatus,
			&orderModel.Total,
			&orderModel.Source,
			&orderModel.Destination,
			&orderModel.ObjectType,
			&orderModel.Description,
			&orderModel.ImagePath,
			&orderModel.DeliveryID,
			&orderModel.DeliveryStatus,
			&orderModel.ShippingDate,
			&orderModel.DriverID,
			&orderModel.PaymentStatus,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected report repository list customer orders error: %w", err)
		}
		orders = append(orders, ToDomainOrderSummary(&orderModel))
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository list customer orders error: %w", err)
	}

	return orders, nil
}

// ListPendingJobs доставки в статусе pending, новые первыми.
func (r *Repository) ListPendingJobs(ctx context.Context, source *string) ([]entities.PendingJob, error) {
	builder := qb.
		Select("co.id", "p.object_type", "p.image_path", "co.source", "co.destination", "co.date").
		From("customerorder co").
		Join("delivery d ON d.order_id = co.id").
		LeftJoin(firstProductJoin).
		Where(sq.Eq{"d.status": entities.DeliveryPending.String()})

	if source != nil {
		builder = builder.Where(sq.ILike{"co.source": repository.ContainsPattern(*source)})
	}

	builder = builder.OrderBy("co.date DESC", "co.id DESC")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository list pending jobs error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository list pending jobs error: %w", err)
	}
	defer rows.Close()

	jobs := make([]entities.PendingJob, 0, 8)
	for rows.Next() {
		var jobModel PendingJobDB
		err := rows.Scan(
			&jobModel.OrderID,
			&jobModel.ObjectType,
			&jobModel.ImagePath,
			&jobModel.Source,
			&jobModel.Destination,
			&jobModel.Date,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected report repository list pending jobs error: %w", err)
		}
		jobs = append(jobs, ToDomainPendingJob(&jobModel))
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository list pending jobs error: %w", err)
	}

	return jobs, nil
}

func (r *Repository) CountDrivers(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM drivers`, "drivers")
}

// CountCustomers пользователи, сделавшие хотя бы один заказ.
func (r *Repository) CountCustomers(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(DISTINCT customer_id) FROM customerorder`, "customers")
}

func (r *Repository) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users`, "users")
}

func (r *Repository) count(ctx context.Context, query, what string) (int64, error) {
	var count int64
	err := r.querier.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected report repository count %s error: %w", what, err)
	}
	return count, nil
}

// DeliveryStats canceled в отчете соответствует статусу failed.
func (r *Repository) DeliveryStats(ctx context.Context) (entities.DeliveryStats, error) {
	query := `SELECT
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'in_transit'),
			COUNT(*) FILTER (WHERE status = 'delivered'),
			COUNT(*) FILTER (WHERE status = 'failed')
		FROM delivery`

	var stats entities.DeliveryStats
	err := r.querier.QueryRow(ctx, query).
		Scan(
			&stats.Pending,
			&stats.InTransit,
			&stats.Delivered,
			&stats.Canceled,
		)
	if err != nil {
		return entities.DeliveryStats{}, fmt.Errorf("unexpected report repository delivery stats error: %w", err)
	}

	return stats, nil
}

func (r *Repository) RecentDeliveries(ctx context.Context, limit uint64) ([]entities.RecentDelivery, error) {
	query, args, err := qb.
		Select("d.order_id", "d.status", "d.created_at", "u.name").
		From("delivery d").
		Join("customerorder co ON co.id = d.order_id").
		Join("users u ON u.id = co.customer_id").
		OrderBy("d.created_at DESC", "d.id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository recent deliveries error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository recent deliveries error: %w", err)
	}
	defer rows.Close()

	deliveries := make([]entities.RecentDelivery, 0, limit)
	for rows.Next() {
		var deliveryModel RecentDeliveryDB
		err := rows.Scan(
			&deliveryModel.OrderID,
			&deliveryModel.Status,
			&deliveryModel.CreatedAt,
			&deliveryModel.CustomerName,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected report repository recent deliveries error: %w", err)
		}
		deliveries = append(deliveries, ToDomainRecentDelivery(&deliveryModel))
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository recent deliveries error: %w", err)
	}

	return deliveries, nil
}

func (r *Repository) TopDrivers(ctx context.Context, limit uint64) ([]entities.TopDriver, error) {
	query, args, err := qb.
		Select("u.name", "d.vehicle_type", "d.rating").
		From("drivers d").
		Join("users u ON u.id = d.user_id").
		OrderBy("d.rating DESC", "d.id").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository top drivers error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository top drivers error: %w", err)
	}
	defer rows.Close()

	drivers := make([]entities.TopDriver, 0, limit)
	for rows.Next() {
		var driverModel TopDriverDB
		err := rows.Scan(
			&driverModel.Name,
			&driverModel.VehicleType,
			&driverModel.Rating,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected report repository top drivers error: %w", err)
		}
		drivers = append(drivers, ToDomainTopDriver(&driverModel))
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository top drivers error: %w", err)
	}

	return drivers, nil
}
