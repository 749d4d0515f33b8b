package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultPaymentGatewayURL     = "https://api.konnect.network/api/v2"
	defaultPaymentGatewayTimeout = 10 * time.Second
	defaultUploadDir             = "uploads"
	defaultMaxUploadSize         = 5 << 20
	defaultDeliveryEventsTopic   = "delivery.status_changed"
)

type (
	App struct {
		Env           string // production скрывает details в ответах с ошибкой
		LoggerAdapter string // zap | logrus
		LogLevel      string
	}

	Tasks struct {
		PaymentReconcileInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Auth struct {
		JWTSecret string
	}

	Storage struct {
		UploadDir     string
		MaxUploadSize int64
	}

	Matching struct {
		MaxActiveDeliveries int // 0 - без ограничения
	}

	Payment struct {
		GatewayURL     string
		APIKey         string
		MerchantID     string
		ReturnURL      string
		Timeout        time.Duration
		ReconcileAfter time.Duration
		ReconcileBatch int
	}

	IdentityService struct {
		GRPCHost string // пусто - пользователи проверяются по таблице users
	}

	Kafka struct {
		PortHealthcheck     string
		Brokers             string
		Topic               string
		ConsumerGroup       string
		DeliveryEventsTopic string
		Sarama              Sarama
		Handlers            KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		PaymentStatusChanged PaymentStatusChanged
	}

	PaymentStatusChanged struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		App             App
		Tasks           Tasks
		Server          HTTPServer
		Database        Database
		Auth            Auth
		Storage         Storage
		Matching        Matching
		Payment         Payment
		IdentityService IdentityService
		Kafka           Kafka
	}
)

func (a App) ExposeErrorDetails() bool {
	return a.Env != "production"
}

func (k Kafka) ProducerEnabled() bool {
	return k.Brokers != ""
}

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// ValidateConsumer проверяет настройки, без которых не запустить consumer group.
func (k Kafka) ValidateConsumer() error {
	if k.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if k.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if k.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if k.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if k.Handlers.PaymentStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_PAYMENT_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}
	return nil
}

func loadFromEnv() (*Config, error) {
	reconcileInterval, err := osGetEnvDuration("BACKGROUND_PAYMENT_RECONCILE_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	paymentStatusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_PAYMENT_STATUS_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	maxUploadSize, err := osGetInt("STORAGE_MAX_UPLOAD_SIZE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	maxActiveDeliveries, err := osGetInt("MATCHING_MAX_ACTIVE_DELIVERIES")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	paymentTimeout, err := osGetEnvDuration("PAYMENT_GATEWAY_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	reconcileAfter, err := osGetEnvDuration("PAYMENT_RECONCILE_AFTER")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	reconcileBatch, err := osGetInt("PAYMENT_RECONCILE_BATCH")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cfg := &Config{
		App: App{
			Env:           os.Getenv("APP_ENV"),
			LoggerAdapter: os.Getenv("LOGGER_ADAPTER"),
			LogLevel:      os.Getenv("LOG_LEVEL"),
		},
		Tasks: Tasks{
			PaymentReconcileInterval: reconcileInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Auth: Auth{
			JWTSecret: os.Getenv("JWT_SECRET"),
		},
		Storage: Storage{
			UploadDir:     os.Getenv("STORAGE_UPLOAD_DIR"),
			MaxUploadSize: int64(maxUploadSize),
		},
		Matching: Matching{
			MaxActiveDeliveries: maxActiveDeliveries,
		},
		Payment: Payment{
			GatewayURL:     os.Getenv("PAYMENT_GATEWAY_URL"),
			APIKey:         os.Getenv("KONNECT_API_KEY"),
			MerchantID:     os.Getenv("KONNECT_MERCHANT_ID"),
			ReturnURL:      os.Getenv("KONNECT_RETURN_URL"),
			Timeout:        paymentTimeout,
			ReconcileAfter: reconcileAfter,
			ReconcileBatch: reconcileBatch,
		},
		IdentityService: IdentityService{
			GRPCHost: os.Getenv("IDENTITY_SERVICE_GRPC_HOST"),
		},
		Kafka: Kafka{
			Brokers:             os.Getenv("KAFKA_BROKERS"),
			Topic:               os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:       os.Getenv("KAFKA_CONSUMER_GROUP"),
			DeliveryEventsTopic: os.Getenv("KAFKA_DELIVERY_EVENTS_TOPIC"),
			PortHealthcheck:     os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				PaymentStatusChanged: PaymentStatusChanged{
					ProcessTimeout: paymentStatusChangedTimeout,
				},
			},
		},
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.LoggerAdapter == "" {
		cfg.App.LoggerAdapter = "zap"
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = "info"
	}
	if cfg.Storage.UploadDir == "" {
		cfg.Storage.UploadDir = defaultUploadDir
	}
	if cfg.Storage.MaxUploadSize == 0 {
		cfg.Storage.MaxUploadSize = defaultMaxUploadSize
	}
	if cfg.Payment.GatewayURL == "" {
		cfg.Payment.GatewayURL = defaultPaymentGatewayURL
	}
	if cfg.Payment.Timeout == time.Duration(0) {
		cfg.Payment.Timeout = defaultPaymentGatewayTimeout
	}
	if cfg.Payment.ReconcileBatch == 0 {
		cfg.Payment.ReconcileBatch = 50
	}
	if cfg.Kafka.DeliveryEventsTopic == "" {
		cfg.Kafka.DeliveryEventsTopic = defaultDeliveryEventsTopic
	}
}

func validateConfig(cfg *Config) error {
	switch cfg.App.LoggerAdapter {
	case "zap", "logrus":
	default:
		return fmt.Errorf("LOGGER_ADAPTER %q is not supported (zap, logrus)", cfg.App.LoggerAdapter)
	}

	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}

	if cfg.Matching.MaxActiveDeliveries < 0 {
		return errors.New("MATCHING_MAX_ACTIVE_DELIVERIES must not be negative")
	}

	if cfg.Tasks.PaymentReconcileInterval == time.Duration(0) {
		return errors.New("BACKGROUND_PAYMENT_RECONCILE_INTERVAL is required")
	}
	if cfg.Payment.ReconcileAfter == time.Duration(0) {
		return errors.New("PAYMENT_RECONCILE_AFTER is required")
	}

	if cfg.Kafka.ProducerEnabled() && cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
