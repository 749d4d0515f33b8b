package payment

import "errors"

var (
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrMissingPaymentRef = errors.New("payment reference is required")
	ErrInvalidAmount     = errors.New("order total must be positive")

	ErrOrderNotFound       = errors.New("order not found")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrPaymentNotInitiated = errors.New("payment was not initiated for this order")

	ErrOrderAlreadyPaid = errors.New("order already paid")
	ErrOrderNotPayable  = errors.New("order cannot be paid in its current state")

	ErrUpstreamFailure = errors.New("payment gateway failure")
)
