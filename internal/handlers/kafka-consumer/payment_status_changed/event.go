package payment_status_changed

// paymentStatusEvent сообщение шлюза о смене статуса платежа.
type paymentStatusEvent struct {
	PaymentRef string `json:"paymentRef"`
	Status     string `json:"status"`
}
