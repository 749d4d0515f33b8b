package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "brokerage/internal/app"
	"brokerage/internal/handlers/rest/assign_role_post"
	"brokerage/internal/handlers/rest/cancel_delivery_post"
	"brokerage/internal/handlers/rest/customer_orders_get"
	"brokerage/internal/handlers/rest/dashboard_get"
	"brokerage/internal/handlers/rest/delivery_assign_post"
	"brokerage/internal/handlers/rest/delivery_get"
	"brokerage/internal/handlers/rest/delivery_status_post"
	"brokerage/internal/handlers/rest/drivers_search_get"
	"brokerage/internal/handlers/rest/health_get"
	"brokerage/internal/handlers/rest/healthcheck_head"
	"brokerage/internal/handlers/rest/nearest_drivers_get"
	"brokerage/internal/handlers/rest/order_post"
	"brokerage/internal/handlers/rest/payment_callback_get"
	"brokerage/internal/handlers/rest/payment_cancel_get"
	"brokerage/internal/handlers/rest/payment_initiate_post"
	"brokerage/internal/handlers/rest/payment_status_get"
	"brokerage/internal/handlers/rest/payment_webhook"
	"brokerage/internal/handlers/rest/pending_jobs_get"
	"brokerage/internal/handlers/rest/ping_get"
	"brokerage/internal/handlers/rest/user_delete"
	"brokerage/internal/handlers/rest/users_search_get"
	"brokerage/internal/pkg/config"
	"brokerage/internal/pkg/dotenv"
	"brokerage/internal/pkg/grpcclient"
	"brokerage/internal/pkg/kafka"
	metrics_system "brokerage/internal/pkg/metrics"
	"brokerage/internal/pkg/middlewares/auth"
	"brokerage/internal/pkg/middlewares/error_details"
	"brokerage/internal/pkg/middlewares/graceful_shutdown"
	"brokerage/internal/pkg/middlewares/metrics"
	"brokerage/internal/pkg/middlewares/rate_limiter"
	"brokerage/internal/pkg/middlewares/timeout"
	"brokerage/internal/pkg/postgres"
	"brokerage/pkg/logger"
	"brokerage/pkg/token_bucket"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
)

const roleAdmin = "admin"

func main() {
	if err := dotenv.Load(); err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	appLogger, err := application.NewLogger(cfg.App)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := appLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	mainLog := appLogger.With()
	mainLog.Info("starting brokerage application",
		logger.NewField("env", cfg.App.Env),
		logger.NewField("logger", cfg.App.LoggerAdapter),
	)

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck,funlen // shutdown наследуется от context.Background(), это часть graceful shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	// без адреса identity-сервиса пользователи проверяются по таблице users
	var conn *grpc.ClientConn
	if cfg.IdentityService.GRPCHost != "" {
		conn, err = grpcclient.NewConnClient(ctx, log, cfg.IdentityService.GRPCHost)
		if err != nil {
			return fmt.Errorf("gRPC client: %w", err)
		}
		defer func() {
			err := conn.Close()
			if err != nil {
				runLog.Error("failed to close gRPC connection",
					logger.NewField("error", err),
				)
			}
		}()
	}

	// publisher остается nil-интерфейсом, если kafka не настроена
	var publisher application.EventPublisher
	if cfg.Kafka.ProducerEnabled() {
		producer, err := kafka.NewProducer(ctx, log, &cfg.Kafka)
		if err != nil {
			return fmt.Errorf("kafka producer: %w", err)
		}
		defer func() {
			err := producer.Close()
			if err != nil {
				runLog.Error("failed to close kafka producer",
					logger.NewField("error", err),
				)
			}
		}()
		publisher = producer
	} else {
		runLog.Warn("kafka producer disabled, delivery events are not published")
	}

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, conn, publisher, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	go businessApp.Hub.Run(ctx)
	metrics_system.StartSystemMetricsCollector(ctx)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, pool, businessApp, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown, pool),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // если pprof выключен, канал nil и кейс никогда не сработает
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

//nolint:funlen // таблица маршрутов
func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	pool *pgxpool.Pool,
	app *application.Application,
	cfg *config.Config,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))
	router.Use(error_details.Middleware(cfg.App.ExposeErrorDetails()))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, pool)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")
	router.Handle("/health", health_get.New(log, pool)).Methods("GET")

	router.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.UploadDir))),
	).Methods("GET")

	// литеральные пути регистрируются раньше путей с переменными
	delivery := router.PathPrefix("/api/delivery").Subrouter()
	delivery.Handle("/order", order_post.New(log, app.ServiceOrder, cfg.Storage.MaxUploadSize)).Methods("POST")
	delivery.Handle("/cancel-delivery", cancel_delivery_post.New(log, app.ServiceOrder)).Methods("POST")
	delivery.Handle("/nearest-drivers", nearest_drivers_get.New(log, app.ServiceMatching)).Methods("GET")
	delivery.Handle("/drivers/search", drivers_search_get.New(log, app.ServiceMatching)).Methods("GET")
	delivery.Handle("/ws", app.Hub).Methods("GET")
	delivery.Handle("/user-orders/{customerId}", customer_orders_get.New(log, app.ServiceReport)).Methods("GET")
	delivery.Handle("/{customerId}/in-transit", customer_orders_get.NewInTransit(log, app.ServiceReport)).Methods("GET")
	delivery.Handle("/{orderId}/update-status", delivery_status_post.New(log, app.ServiceOrder)).Methods("POST")
	delivery.Handle("/{orderId}/assign-driver", delivery_assign_post.New(log, app.ServiceOrder)).Methods("POST")
	delivery.Handle("/{orderId}", delivery_get.New(log, app.ServiceOrder)).Methods("GET")

	router.Handle("/api/delivery-agent/orders", pending_jobs_get.New(log, app.ServiceReport)).Methods("GET")

	admin := router.NewRoute().Subrouter()
	admin.Use(auth.Middleware(log, cfg.Auth.JWTSecret, roleAdmin))
	admin.Handle("/api/dashboard", dashboard_get.New(log, app.ServiceReport)).Methods("GET")
	admin.Handle("/api/users/search", users_search_get.New(log, app.ServiceUser)).Methods("GET")
	admin.Handle("/api/users/assign-role", assign_role_post.New(log, app.ServiceUser)).Methods("POST")
	admin.Handle("/api/users/{userId}", user_delete.New(log, app.ServiceUser)).Methods("DELETE")

	payment := router.PathPrefix("/api/payment").Subrouter()
	payment.Handle("/initiate", payment_initiate_post.New(log, app.ServicePayment)).Methods("POST")
	payment.Handle("/webhook", payment_webhook.New(log, app.ServicePaymentStatus)).Methods("GET", "POST")
	payment.Handle("/callback/{orderId}", payment_callback_get.New(log, app.ServicePaymentStatus)).Methods("GET")
	payment.Handle("/cancel/{orderId}", payment_cancel_get.New(log, app.ServicePayment)).Methods("GET")
	payment.Handle("/status/{orderId}", payment_status_get.New(log, app.ServicePayment)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool, pool *pgxpool.Pool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, pool)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
