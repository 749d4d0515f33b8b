package payment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"brokerage/internal/entities"
	"brokerage/internal/pkg/metrics"
)

type Payment struct {
	repository Repository
	gateway    Gateway
	deliveries DeliveryService
	notifier   Notifier
	txManager  TxManager
}

func New(
	repository Repository,
	gateway Gateway,
	deliveries DeliveryService,
	notifier Notifier,
	txManager TxManager,
) *Payment {
	return &Payment{
		repository: repository,
		gateway:    gateway,
		deliveries: deliveries,
		notifier:   notifier,
		txManager:  txManager,
	}
}

// InitiatePayment создает платеж на шлюзе. При ошибке шлюза заказ не меняется.
func (p *Payment) InitiatePayment(ctx context.Context, orderID int64) (*entities.PaymentSession, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}

	order, err := p.repository.GetOrderForPayment(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if err := checkPayable(order); err != nil {
		return nil, err
	}

	amount, err := amountMillimes(order.Total)
	if err != nil {
		return nil, err
	}

	session, err := p.gateway.InitPayment(ctx, entities.PaymentRequest{
		OrderID:        order.OrderID,
		CustomerID:     order.CustomerID,
		AmountMillimes: amount,
		Description:    paymentDescription(order.OrderID),
		CustomerName:   order.CustomerName,
		CustomerEmail:  order.CustomerEmail,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamFailure, err)
	}

	err = p.repository.SetPaymentReference(ctx, order.OrderID, session.PaymentRef, now())
	if err != nil {
		return nil, fmt.Errorf("save payment reference: %w", err)
	}

	metrics.PaymentOutcomesTotal.WithLabelValues(entities.PaymentPending.String()).Inc()
	return session, nil
}

// ProcessPaymentResult применяет итог оплаты. Успех помечает заказ оплаченным и
// переводит ожидающую доставку в assigned, неуспех оставляет заказ в состоянии до оплаты.
// Повторная обработка оплаченного заказа ничего не меняет.
func (p *Payment) ProcessPaymentResult(ctx context.Context, paymentRef string, success bool) (*entities.PaymentOrder, error) {
	paymentRef = strings.TrimSpace(paymentRef)
	if paymentRef == "" {
		return nil, ErrMissingPaymentRef
	}

	var (
		order   *entities.PaymentOrder
		change  *entities.DeliveryStatusChange
		changed bool
	)
	err := p.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = p.repository.GetByReferenceForUpdate(ctx, paymentRef)
		if err != nil {
			return fmt.Errorf("get payment: %w", err)
		}

		if order.PaymentStatus == entities.PaymentPaid {
			return nil
		}

		next := entities.PaymentFailed
		if success {
			next = entities.PaymentPaid
		}
		if order.PaymentStatus == next {
			return nil
		}

		if err := p.repository.UpdatePaymentStatus(ctx, order.OrderID, next); err != nil {
			return fmt.Errorf("update payment status: %w", err)
		}
		order.PaymentStatus = next
		changed = true

		if success && order.DeliveryStatus == entities.DeliveryPending {
			change, err = p.deliveries.TransitionDelivery(ctx, order.OrderID, entities.DeliveryAssigned)
			if err != nil {
				return fmt.Errorf("assign delivery: %w", err)
			}
			order.DeliveryStatus = change.Status
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		metrics.PaymentOutcomesTotal.WithLabelValues(order.PaymentStatus.String()).Inc()
	}
	if change != nil {
		p.notifier.Notify(ctx, *change)
	}
	return order, nil
}

// CancelPayment пользователь вернулся со страницы отмены, платеж считается неуспешным.
func (p *Payment) CancelPayment(ctx context.Context, orderID int64) (*entities.PaymentOrder, error) {
	order, err := p.GetPaymentStatus(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.PaymentRef == nil {
		return nil, ErrPaymentNotInitiated
	}

	return p.ProcessPaymentResult(ctx, *order.PaymentRef, false)
}

func (p *Payment) GetPaymentStatus(ctx context.Context, orderID int64) (*entities.PaymentOrder, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}

	order, err := p.repository.GetOrderForPayment(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// ListStalePending платежи, которые висят в pending дольше olderThan.
func (p *Payment) ListStalePending(ctx context.Context, olderThan time.Duration, limit uint64) ([]entities.PaymentOrder, error) {
	orders, err := p.repository.ListStalePending(ctx, now().Add(-olderThan), limit)
	if err != nil {
		return nil, fmt.Errorf("list stale payments: %w", err)
	}
	return orders, nil
}
