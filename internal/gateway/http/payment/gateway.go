package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"brokerage/internal/entities"
	"brokerage/internal/pkg/config"
	"brokerage/internal/pkg/metrics"
	retrierconfig "brokerage/pkg/retrier"
	"brokerage/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "konnect"
	currency    = "TND"

	apiKeyHeader = "x-api-key"

	// тело ответа с ошибкой обрезается до этого размера
	maxErrorBody = 1 << 10
)

const (
	initialInterval = 200 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
	maxRetries      = 3
)

type PaymentGateway struct {
	client     httpClient
	retrier    retrier
	baseURL    string
	apiKey     string
	merchantID string
	returnURL  string
}

func New(cfg *config.Payment) *PaymentGateway {
	return NewWithClient(&http.Client{Timeout: cfg.Timeout}, cfg)
}

func NewWithClient(client httpClient, cfg *config.Payment) *PaymentGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		MaxRetries:      maxRetries,
		ShouldRetry:     isRetryable,
	}

	return &PaymentGateway{
		client:     client,
		retrier:    backoff_adapter.New(retryConfig),
		baseURL:    strings.TrimRight(cfg.GatewayURL, "/"),
		apiKey:     cfg.APIKey,
		merchantID: cfg.MerchantID,
		returnURL:  cfg.ReturnURL,
	}
}

// InitPayment создает платеж. Запрос не идемпотентен и не повторяется.
func (g *PaymentGateway) InitPayment(ctx context.Context, request entities.PaymentRequest) (*entities.PaymentSession, error) {
	body, err := json.Marshal(initPaymentRequest{
		MerchantID:  g.merchantID,
		Amount:      request.AmountMillimes,
		Currency:    currency,
		Description: request.Description,
		Customer: paymentCustomer{
			Email: request.CustomerEmail,
			Name:  request.CustomerName,
		},
		Metadata: paymentMetadata{
			OrderID:    request.OrderID,
			CustomerID: request.CustomerID,
		},
		SuccessURL: g.redirectURL(true),
		FailURL:    g.redirectURL(false),
	})
	if err != nil {
		return nil, fmt.Errorf("marshal init payment request: %w", err)
	}

	var resp initPaymentResponse

	start := time.Now()
	err = g.do(ctx, http.MethodPost, g.baseURL+"/payments/init", body, &resp)
	metrics.GatewayRequestDuration.WithLabelValues(serviceName, "InitPayment", statusCode(err)).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("gateway payment, init payment: order %d: %w", request.OrderID, err)
	}

	session := &entities.PaymentSession{
		PaymentURL: firstNonEmpty(resp.PayURL, resp.PaymentURL),
		PaymentRef: firstNonEmpty(resp.PaymentRef, resp.ID),
	}
	if session.PaymentURL == "" || session.PaymentRef == "" {
		return nil, fmt.Errorf("gateway payment, init payment: order %d: %w", request.OrderID, ErrEmptySession)
	}

	return session, nil
}

func (g *PaymentGateway) GetPaymentStatus(ctx context.Context, paymentRef string) (entities.GatewayPaymentStatus, error) {
	endpoint := g.baseURL + "/payments/" + url.PathEscape(paymentRef)

	var resp paymentStatusResponse

	err := g.executeWithMetrics(ctx, "GetPaymentStatus", func(ctx context.Context) error {
		resp = paymentStatusResponse{}
		return g.do(ctx, http.MethodGet, endpoint, nil, &resp)
	})
	if err != nil {
		return "", fmt.Errorf("gateway payment, get payment status: %s: %w", paymentRef, err)
	}

	return entities.GatewayPaymentStatus(strings.ToLower(resp.Payment.Status)), nil
}

func (g *PaymentGateway) do(ctx context.Context, method, endpoint string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(apiKeyHeader, g.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		return &StatusError{Code: res.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (g *PaymentGateway) redirectURL(success bool) string {
	return g.returnURL + "?success=" + strconv.FormatBool(success)
}

// isRetryable повторяет сетевые ошибки, 429 и 5xx.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}

	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code == http.StatusTooManyRequests || statusErr.Code >= http.StatusInternalServerError
	}

	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) || errors.Is(err, io.ErrUnexpectedEOF)
}

// latency metric -> attempts metric -> retrier -> gateway
func (g *PaymentGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	code := statusCode(err)
	metrics.GatewayRequestDuration.WithLabelValues(serviceName, method, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		metrics.GatewayRetriesTotal.WithLabelValues(serviceName, method, code).Inc()
	}

	return err
}

func statusCode(err error) string {
	if err == nil {
		return "200"
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.Code)
	}
	return "NETWORK"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
