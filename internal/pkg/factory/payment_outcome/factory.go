package payment_outcome

import (
	"context"
	"fmt"

	"brokerage/internal/entities"
	"brokerage/internal/service/payment_status"
)

type StatusHandlerFactory struct {
	paymentService payment_status.PaymentService
}

func NewStatusHandlerFactory(paymentService payment_status.PaymentService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		paymentService: paymentService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.GatewayPaymentStatus) (payment_status.ExecuteFn, error) {
	switch status {
	case entities.GatewayPaymentCompleted:
		return f.completedHandler, nil
	case entities.GatewayPaymentFailed,
		entities.GatewayPaymentExpired,
		entities.GatewayPaymentCanceled:
		return f.failedHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", payment_status.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) completedHandler(ctx context.Context, paymentRef string) (*entities.PaymentOrder, error) {
	order, err := f.paymentService.ProcessPaymentResult(ctx, paymentRef, true)
	if err != nil {
		return nil, fmt.Errorf("apply successful payment %s: %w", paymentRef, err)
	}
	return order, nil
}

func (f *StatusHandlerFactory) failedHandler(ctx context.Context, paymentRef string) (*entities.PaymentOrder, error) {
	order, err := f.paymentService.ProcessPaymentResult(ctx, paymentRef, false)
	if err != nil {
		return nil, fmt.Errorf("apply failed payment %s: %w", paymentRef, err)
	}
	return order, nil
}
