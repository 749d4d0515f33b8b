package payment_reconcile

import (
	"context"
	"fmt"
	"time"

	"brokerage/pkg/logger"
)

// PaymentReconcile перепроверяет на шлюзе платежи, которые зависли в pending:
// webhook мог не дойти, а событие из Kafka потеряться.
type PaymentReconcile struct {
	log        taskLogger
	payments   PaymentService
	reconciler Reconciler
	interval   time.Duration
	olderThan  time.Duration
	batch      uint64
}

func NewPaymentReconcile(
	log taskLogger,
	payments PaymentService,
	reconciler Reconciler,
	interval time.Duration,
	olderThan time.Duration,
	batch int,
) *PaymentReconcile {
	return &PaymentReconcile{
		log:        log,
		payments:   payments,
		reconciler: reconciler,
		interval:   interval,
		olderThan:  olderThan,
		batch:      uint64(batch),
	}
}

func (p *PaymentReconcile) TTL() time.Duration {
	return p.interval
}

// Do ошибка отдельного заказа не прерывает проход, заказ попадет в следующий.
func (p *PaymentReconcile) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	orders, err := p.payments.ListStalePending(ctxWithTimeout, p.olderThan, p.batch)
	if err != nil {
		return fmt.Errorf("list stale payments: %w", err)
	}
	if len(orders) == 0 {
		return nil
	}

	var resolved, failed int
	for _, order := range orders {
		if ctxWithTimeout.Err() != nil {
			break
		}

		outcome, err := p.reconciler.ReconcileOrder(ctxWithTimeout, order.OrderID)
		if err != nil {
			failed++
			p.log.With(
				logger.NewField("order", order.OrderID),
				logger.NewField("error", err),
			).Warn("payment reconcile failed")
			continue
		}
		if outcome.Order != nil && outcome.Order.PaymentStatus != order.PaymentStatus {
			resolved++
		}
	}

	p.log.With(
		logger.NewField("checked", len(orders)),
		logger.NewField("resolved", resolved),
		logger.NewField("failed", failed),
	).Info("payment reconcile")

	return nil
}

func (p *PaymentReconcile) Info() string {
	return "payment reconcile"
}
