//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"brokerage/internal/pkg/config"
	matchingService "brokerage/internal/service/matching"
	orderService "brokerage/internal/service/order"
	paymentService "brokerage/internal/service/payment"
	paymentStatusService "brokerage/internal/service/payment_status"
	reportService "brokerage/internal/service/report"
	userService "brokerage/internal/service/user"
	"brokerage/pkg/logger"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
)

var repositorySet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideOrderRepository,
	provideDriverRepository,
	provideReportRepository,
	provideUserRepository,
	providePaymentRepository,
)

var paymentSet = wire.NewSet(
	providePaymentGateway,
	provideStatusHandlerFactory,
	provideServicePayment,
	provideServicePaymentStatus,
)

// InitializeApplication для HTTP сервиса (cmd/service).
// conn nil - пользователи проверяются по таблице users, publisher nil - события только в websocket.
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	conn *grpc.ClientConn,
	publisher EventPublisher,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		repositorySet,
		paymentSet,

		provideIdentityGateway,
		provideStorage,
		provideHub,
		provideNotifier,

		provideServiceOrder,
		provideServiceMatching,
		provideServiceReport,
		provideServiceUser,

		providePaymentReconcileTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceMatching), new(*matchingService.Matching)),
		wire.Bind(new(ServiceReport), new(*reportService.Report)),
		wire.Bind(new(ServiceUser), new(*userService.User)),
		wire.Bind(new(ServicePayment), new(*paymentService.Payment)),
		wire.Bind(new(ServicePaymentStatus), new(*paymentStatusService.PaymentStatus)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-payment-status).
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	conn *grpc.ClientConn,
	publisher EventPublisher,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		repositorySet,
		paymentSet,

		provideIdentityGateway,
		provideStorage,
		provideWorkerNotifier,

		provideServiceOrder,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
