package payment

type initPaymentRequest struct {
	MerchantID  string          `json:"merchantId"`
	Amount      int64           `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description,omitempty"`
	Customer    paymentCustomer `json:"customer"`
	Metadata    paymentMetadata `json:"metadata"`
	SuccessURL  string          `json:"successUrl"`
	FailURL     string          `json:"failUrl"`
}

type paymentCustomer struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type paymentMetadata struct {
	OrderID    int64 `json:"orderId"`
	CustomerID int64 `json:"customerId"`
}

// Разные версии API отдают ссылку и идентификатор под разными ключами.
type initPaymentResponse struct {
	PayURL     string `json:"payUrl"`
	PaymentURL string `json:"paymentUrl"`
	PaymentRef string `json:"paymentRef"`
	ID         string `json:"id"`
}

type paymentStatusResponse struct {
	Payment struct {
		Status string `json:"status"`
	} `json:"payment"`
}
