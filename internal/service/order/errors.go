package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidCustomerID     = errors.New("invalid customer id")
	ErrInvalidDriverID       = errors.New("invalid driver id")
	ErrInvalidShippingDate   = errors.New("invalid shipping date")
	ErrInvalidStatus         = errors.New("invalid status")

	ErrCustomerNotFound = errors.New("customer not found")
	ErrDeliveryNotFound = errors.New("delivery not found")
	ErrDriverNotFound   = errors.New("driver not found")

	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrDriverAlreadyAssigned = errors.New("delivery already assigned to another driver")

	ErrOrderCreationFailed = errors.New("order creation failed")
)
