package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"brokerage/internal/entities"
	"brokerage/internal/repository"
	"brokerage/internal/service/payment"

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

func paymentOrders() sq.SelectBuilder {
	return qb.
		Select(
			"co.id", "co.customer_id", "u.name", "u.email", "co.total",
			"co.payment_id", "co.payment_status", "co.payment_initiated_at", "d.status",
		).
		From("customerorder co").
		Join("users u ON u.id = co.customer_id").
		Join("delivery d ON d.order_id = co.id")
}

func scanPaymentOrder(row pgx.Row) (*entities.PaymentOrder, error) {
	var orderModel PaymentOrderDB
	err := row.Scan(
		&orderModel.OrderID,
		&orderModel.CustomerID,
		&orderModel.CustomerName,
		&orderModel.CustomerEmail,
		&orderModel.Total,
		&orderModel.PaymentRef,
		&orderModel.PaymentStatus,
		&orderModel.PaymentInitiatedAt,
		&orderModel.DeliveryStatus,
	)
	if err != nil {
		return nil, err
	}
	return ToDomain(&orderModel), nil
}

func (r *Repository) GetOrderForPayment(ctx context.Context, orderID int64) (*entities.PaymentOrder, error) {
	query, args, err := paymentOrders().
		Where(sq.Eq{"co.id": orderID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository get order error: %w", err)
	}

	order, err := scanPaymentOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payment.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected payment repository get order error: %w", err)
	}

	return order, nil
}

// SetPaymentReference новая ссылка заменяет прежнюю, статус возвращается в pending.
func (r *Repository) SetPaymentReference(ctx context.Context, orderID int64, paymentRef string, initiatedAt time.Time) error {
	query := `UPDATE customerorder
		SET payment_id = $1, payment_status = $2, payment_initiated_at = $3
		WHERE id = $4`

	tag, err := r.querier.Exec(ctx, query, paymentRef, entities.PaymentPending.String(), initiatedAt, orderID)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return fmt.Errorf("payment reference %q already used: %w", paymentRef, err)
		}
		return fmt.Errorf("unexpected payment repository set reference error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payment.ErrOrderNotFound
	}

	return nil
}

// GetByReferenceForUpdate блокирует строку заказа до конца транзакции.
func (r *Repository) GetByReferenceForUpdate(ctx context.Context, paymentRef string) (*entities.PaymentOrder, error) {
	query, args, err := paymentOrders().
		Where(sq.Eq{"co.payment_id": paymentRef}).
		Suffix("FOR UPDATE OF co").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository get by reference error: %w", err)
	}

	order, err := scanPaymentOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("unexpected payment repository get by reference error: %w", err)
	}

	return order, nil
}

func (r *Repository) UpdatePaymentStatus(ctx context.Context, orderID int64, status entities.PaymentStatusType) error {
	query := `UPDATE customerorder SET payment_status = $1 WHERE id = $2`

	tag, err := r.querier.Exec(ctx, query, status.String(), orderID)
	if err != nil {
		return fmt.Errorf("unexpected payment repository update status error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payment.ErrOrderNotFound
	}

	return nil
}

// ListStalePending платежи в pending, созданные раньше initiatedBefore, старые первыми.
func (r *Repository) ListStalePending(ctx context.Context, initiatedBefore time.Time, limit uint64) ([]entities.PaymentOrder, error) {
	query, args, err := paymentOrders().
		Where(sq.Eq{"co.payment_status": entities.PaymentPending.String()}).
		Where(sq.NotEq{"co.payment_id": nil}).
		Where(sq.Lt{"co.payment_initiated_at": initiatedBefore}).
		OrderBy("co.payment_initiated_at", "co.id").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository list stale error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository list stale error: %w", err)
	}
	defer rows.Close()

	orders := make([]entities.PaymentOrder, 0, limit)
	for rows.Next() {
		order, err := scanPaymentOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected payment repository list stale error: %w", err)
		}
		orders = append(orders, *order)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository list stale error: %w", err)
	}

	return orders, nil
}
