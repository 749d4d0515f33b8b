package identity

import (
	"context"
	"fmt"
	"time"

	"brokerage/internal/pkg/metrics"
	retrierconfig "brokerage/pkg/retrier"
	"brokerage/pkg/retrier/backoff_adapter"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	serviceName = "identity-service"

	// запрос Int64Value с id пользователя, ответ BoolValue
	userExistsMethod = "/identity.v1.IdentityService/UserExists"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type IdentityGateway struct {
	client  client
	retrier retrier
}

func New(client client) *IdentityGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableCode,
	}

	return &IdentityGateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *IdentityGateway) UserExists(ctx context.Context, userID int64) (bool, error) {
	req := wrapperspb.Int64(userID)

	var resp *wrapperspb.BoolValue

	err := g.executeWithMetrics(ctx, "UserExists", func(ctx context.Context) error {
		resp = &wrapperspb.BoolValue{}
		return g.client.Invoke(ctx, userExistsMethod, req, resp)
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, fmt.Errorf("gateway identity, user exists: %d: %w", userID, err)
	}

	return resp.GetValue(), nil
}

func isRetryableCode(err error) bool {
	if err == nil {
		return false
	}
	st, ok := status.FromError(err)
	if !ok {
		return false
	}

	switch st.Code() {
	case codes.ResourceExhausted,
		codes.Unavailable,
		codes.DeadlineExceeded:
		return true
	default:
		return false
	}
}

// latency metric -> attempts metric -> retrier -> gateway
func (g *IdentityGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	grpcCode := getGRPCCode(err)
	metrics.GatewayRequestDuration.WithLabelValues(serviceName, method, grpcCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		metrics.GatewayRetriesTotal.WithLabelValues(serviceName, method, grpcCode).Inc()
	}

	return err
}

func getGRPCCode(err error) string {
	if err == nil {
		return "OK"
	}
	if st, ok := status.FromError(err); ok {
		return st.Code().String()
	}
	return "UNKNOWN"
}
