package app

import (
	"context"

	identityGateway "brokerage/internal/gateway/grpc/identity"
	paymentGateway "brokerage/internal/gateway/http/payment"
	"brokerage/internal/handlers/rest/assign_role_post"
	"brokerage/internal/handlers/rest/cancel_delivery_post"
	"brokerage/internal/handlers/rest/customer_orders_get"
	"brokerage/internal/handlers/rest/dashboard_get"
	"brokerage/internal/handlers/rest/delivery_assign_post"
	"brokerage/internal/handlers/rest/delivery_get"
	"brokerage/internal/handlers/rest/delivery_status_post"
	"brokerage/internal/handlers/rest/drivers_search_get"
	"brokerage/internal/handlers/rest/nearest_drivers_get"
	"brokerage/internal/handlers/rest/order_post"
	"brokerage/internal/handlers/rest/payment_callback_get"
	"brokerage/internal/handlers/rest/payment_cancel_get"
	"brokerage/internal/handlers/rest/payment_initiate_post"
	"brokerage/internal/handlers/rest/payment_status_get"
	"brokerage/internal/handlers/rest/payment_webhook"
	"brokerage/internal/handlers/rest/pending_jobs_get"
	"brokerage/internal/handlers/rest/user_delete"
	"brokerage/internal/handlers/rest/users_search_get"
	"brokerage/internal/handlers/tasks/payment_reconcile"
	"brokerage/internal/pkg/config"
	"brokerage/internal/pkg/factory/payment_outcome"
	"brokerage/internal/pkg/notifier"
	"brokerage/internal/pkg/storage/local"
	"brokerage/internal/pkg/websocket"
	driverRepo "brokerage/internal/repository/driver"
	orderRepo "brokerage/internal/repository/order"
	paymentRepo "brokerage/internal/repository/payment"
	reportRepo "brokerage/internal/repository/report"
	userRepo "brokerage/internal/repository/user"
	matchingService "brokerage/internal/service/matching"
	orderService "brokerage/internal/service/order"
	paymentService "brokerage/internal/service/payment"
	paymentStatusService "brokerage/internal/service/payment_status"
	reportService "brokerage/internal/service/report"
	userService "brokerage/internal/service/user"
	"brokerage/pkg/background"
	"brokerage/pkg/logger"
	"brokerage/pkg/querier"
	"brokerage/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
)

type Application struct {
	ServiceOrder         ServiceOrder
	ServiceMatching      ServiceMatching
	ServiceReport        ServiceReport
	ServiceUser          ServiceUser
	ServicePayment       ServicePayment
	ServicePaymentStatus ServicePaymentStatus
	Hub                  *websocket.Hub
	BackgroundWorkers    *background.Worker
}

type KafkaWorkerApp struct {
	PaymentStatusService *paymentStatusService.PaymentStatus
}

// EventPublisher sink событий о смене статуса доставки, в проде kafka.Producer.
type EventPublisher interface {
	Publish(ctx context.Context, key string, value []byte) error
}

type ServiceOrder interface {
	order_post.Service
	cancel_delivery_post.Service
	delivery_get.Service
	delivery_status_post.Service
	delivery_assign_post.Service
}

type ServiceMatching interface {
	nearest_drivers_get.Service
	drivers_search_get.Service
}

type ServiceReport interface {
	customer_orders_get.Service
	pending_jobs_get.Service
	dashboard_get.Service
}

type ServiceUser interface {
	users_search_get.Service
	assign_role_post.Service
	user_delete.Service
}

type ServicePayment interface {
	payment_initiate_post.Service
	payment_cancel_get.Service
	payment_status_get.Service
}

type ServicePaymentStatus interface {
	payment_webhook.Service
	payment_callback_get.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideDriverRepository(querier *querier.Querier) *driverRepo.Repository {
	return driverRepo.New(querier)
}

func provideReportRepository(querier *querier.Querier) *reportRepo.Repository {
	return reportRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func providePaymentRepository(querier *querier.Querier) *paymentRepo.Repository {
	return paymentRepo.New(querier)
}

// provideIdentityGateway без gRPC соединения существование пользователя
// проверяется по собственной таблице users.
func provideIdentityGateway(conn *grpc.ClientConn, users *userRepo.Repository) orderService.IdentityGateway {
	if conn == nil {
		return users
	}
	return identityGateway.New(conn)
}

func provideStorage(cfg *config.Config) (*local.Storage, error) {
	return local.New(&cfg.Storage)
}

func provideHub(log logger.Logger) *websocket.Hub {
	return websocket.NewHub(log)
}

func provideNotifier(log logger.Logger, publisher EventPublisher, hub *websocket.Hub) *notifier.Notifier {
	return notifier.New(log, publisher, hub)
}

// provideWorkerNotifier у воркера нет websocket клиентов, события уходят только в Kafka.
func provideWorkerNotifier(log logger.Logger, publisher EventPublisher) *notifier.Notifier {
	return notifier.New(log, publisher, nil)
}

func providePaymentGateway(cfg *config.Config) *paymentGateway.PaymentGateway {
	return paymentGateway.New(&cfg.Payment)
}

func provideServiceOrder(
	repository *orderRepo.Repository,
	identity orderService.IdentityGateway,
	storage *local.Storage,
	notifier *notifier.Notifier,
	txManager *tx.Manager,
) *orderService.Order {
	return orderService.New(repository, identity, storage, notifier, txManager)
}

func provideServiceMatching(repository *driverRepo.Repository, cfg *config.Config) *matchingService.Matching {
	return matchingService.New(repository, &cfg.Matching)
}

func provideServiceReport(repository *reportRepo.Repository) *reportService.Report {
	return reportService.New(repository)
}

func provideServiceUser(repository *userRepo.Repository, txManager *tx.Manager) *userService.User {
	return userService.New(repository, txManager)
}

func provideServicePayment(
	repository *paymentRepo.Repository,
	gateway *paymentGateway.PaymentGateway,
	deliveries *orderService.Order,
	notifier *notifier.Notifier,
	txManager *tx.Manager,
) *paymentService.Payment {
	return paymentService.New(repository, gateway, deliveries, notifier, txManager)
}

func provideStatusHandlerFactory(payments *paymentService.Payment) *payment_outcome.StatusHandlerFactory {
	return payment_outcome.NewStatusHandlerFactory(payments)
}

func provideServicePaymentStatus(
	gateway *paymentGateway.PaymentGateway,
	payments *paymentService.Payment,
	factory *payment_outcome.StatusHandlerFactory,
) *paymentStatusService.PaymentStatus {
	return paymentStatusService.New(gateway, payments, factory)
}

func providePaymentReconcileTask(
	log logger.Logger,
	payments *paymentService.Payment,
	reconciler *paymentStatusService.PaymentStatus,
	cfg *config.Config,
) *payment_reconcile.PaymentReconcile {
	return payment_reconcile.NewPaymentReconcile(
		log,
		payments,
		reconciler,
		cfg.Tasks.PaymentReconcileInterval,
		cfg.Payment.ReconcileAfter,
		cfg.Payment.ReconcileBatch,
	)
}

func provideTaskList(paymentReconcileTask *payment_reconcile.PaymentReconcile) []background.Task {
	return []background.Task{
		paymentReconcileTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
