package payment_status

import "errors"

var (
	ErrUndefinedStatus     = errors.New("undefined payment status")
	ErrMissingPaymentRef   = errors.New("payment reference is required")
	ErrPaymentNotInitiated = errors.New("payment was not initiated for this order")
)
