package report

import (
	"context"
	"fmt"
	"strings"

	"brokerage/internal/entities"

	"golang.org/x/sync/errgroup"
)

const (
	recentDeliveriesLimit = 5
	topDriversLimit       = 5
)

type Report struct {
	repository Repository
}

func New(repository Repository) *Report {
	return &Report{
		repository: repository,
	}
}

func (r *Report) ListCustomerOrders(ctx context.Context, customerID int64) ([]entities.OrderSummary, error) {
	if customerID <= 0 {
		return nil, ErrInvalidCustomerID
	}

	orders, err := r.repository.ListCustomerOrders(ctx, entities.CustomerOrdersFilter{CustomerID: customerID})
	if err != nil {
		return nil, fmt.Errorf("list customer orders: %w", err)
	}
	return orders, nil
}

func (r *Report) ListInTransitOrders(ctx context.Context, customerID int64) ([]entities.OrderSummary, error) {
	if customerID <= 0 {
		return nil, ErrInvalidCustomerID
	}

	inTransit := entities.DeliveryInTransit
	orders, err := r.repository.ListCustomerOrders(ctx, entities.CustomerOrdersFilter{
		CustomerID:     customerID,
		DeliveryStatus: &inTransit,
	})
	if err != nil {
		return nil, fmt.Errorf("list in transit orders: %w", err)
	}
	return orders, nil
}

// ListPendingJobs пустой source означает отсутствие фильтра.
func (r *Report) ListPendingJobs(ctx context.Context, source *string) ([]entities.PendingJob, error) {
	if source != nil && strings.TrimSpace(*source) == "" {
		source = nil
	}
	if source != nil {
		trimmed := strings.TrimSpace(*source)
		source = &trimmed
	}

	jobs, err := r.repository.ListPendingJobs(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("list pending jobs: %w", err)
	}
	return jobs, nil
}

// Dashboard запросы независимы и выполняются параллельно вне транзакции.
func (r *Report) Dashboard(ctx context.Context) (*entities.Dashboard, error) {
	var dashboard entities.Dashboard

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := r.repository.CountDrivers(gCtx)
		if err != nil {
			return fmt.Errorf("count drivers: %w", err)
		}
		dashboard.Drivers = count
		return nil
	})

	g.Go(func() error {
		count, err := r.repository.CountCustomers(gCtx)
		if err != nil {
			return fmt.Errorf("count customers: %w", err)
		}
		dashboard.Customers = count
		return nil
	})

	g.Go(func() error {
		count, err := r.repository.CountUsers(gCtx)
		if err != nil {
			return fmt.Errorf("count users: %w", err)
		}
		dashboard.Users = count
		return nil
	})

	g.Go(func() error {
		stats, err := r.repository.DeliveryStats(gCtx)
		if err != nil {
			return fmt.Errorf("delivery stats: %w", err)
		}
		dashboard.Deliveries = stats
		return nil
	})

	g.Go(func() error {
		recent, err := r.repository.RecentDeliveries(gCtx, recentDeliveriesLimit)
		if err != nil {
			return fmt.Errorf("recent deliveries: %w", err)
		}
		dashboard.RecentDeliveries = recent
		return nil
	})

	g.Go(func() error {
		top, err := r.repository.TopDrivers(gCtx, topDriversLimit)
		if err != nil {
			return fmt.Errorf("top drivers: %w", err)
		}
		dashboard.TopDrivers = top
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard, nil
}
