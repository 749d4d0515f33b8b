package payment_status

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"brokerage/internal/entities"
)

type PaymentStatus struct {
	paymentGateway PaymentGateway
	paymentService PaymentService
	statusFactory  HandlerFactory
}

func New(paymentGateway PaymentGateway, paymentService PaymentService, statusFactory HandlerFactory) *PaymentStatus {
	return &PaymentStatus{
		paymentGateway: paymentGateway,
		paymentService: paymentService,
		statusFactory:  statusFactory,
	}
}

// ProcessPaymentStatusChange статус из события не используется для решения,
// источник правды статус платежа на шлюзе.
func (s *PaymentStatus) ProcessPaymentStatusChange(ctx context.Context, event entities.PaymentStatusEvent) (*entities.PaymentOutcome, error) {
	paymentRef := strings.TrimSpace(event.PaymentRef)
	if paymentRef == "" {
		return nil, ErrMissingPaymentRef
	}

	status, err := s.paymentGateway.GetPaymentStatus(ctx, paymentRef)
	if err != nil {
		return nil, fmt.Errorf("get payment status from gateway: %w", err)
	}

	outcome := &entities.PaymentOutcome{
		PaymentRef:    paymentRef,
		GatewayStatus: status,
	}

	executeFn, err := s.statusFactory.GetHandler(status)
	if err != nil {
		// промежуточные статусы просто пропускаем
		if errors.Is(err, ErrUndefinedStatus) {
			return outcome, nil
		}
		return nil, err
	}

	order, err := executeFn(ctx, paymentRef)
	if err != nil {
		return nil, err
	}

	outcome.Order = order
	return outcome, nil
}

// ReconcileOrder сверяет платеж заказа со шлюзом, используется при возврате
// пользователя со страницы оплаты.
func (s *PaymentStatus) ReconcileOrder(ctx context.Context, orderID int64) (*entities.PaymentOutcome, error) {
	order, err := s.paymentService.GetPaymentStatus(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order payment: %w", err)
	}
	if order.PaymentRef == nil {
		return nil, ErrPaymentNotInitiated
	}

	outcome, err := s.ProcessPaymentStatusChange(ctx, entities.PaymentStatusEvent{PaymentRef: *order.PaymentRef})
	if err != nil {
		return nil, err
	}
	if outcome.Order == nil {
		outcome.Order = order
	}
	return outcome, nil
}
