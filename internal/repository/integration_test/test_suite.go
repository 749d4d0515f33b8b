package integration_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"brokerage/internal/pkg/config"
	"brokerage/internal/pkg/postgres"
	"brokerage/pkg/logger/zap_adapter"
	"brokerage/pkg/querier"
	"brokerage/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	containerUser     = "brokerage"
	containerPassword = "brokerage"
	containerDB       = "brokerage_test"
)

var (
	querierInstance *querier.Querier
	txInstance      *tx.Manager
	querierOnce     sync.Once
)

// GetQuerier подключается к POSTGRES_HOST, если он задан, иначе поднимает
// Postgres в testcontainers. Миграции накатываются один раз на процесс.
func GetQuerier() *querier.Querier {
	querierOnce.Do(func() {
		ctx := context.Background()

		cfg, err := databaseConfig(ctx)
		if err != nil {
			log.Fatalf("failed to prepare database: %v", err)
		}

		zapLogger, err := zap_adapter.NewZapAdapter("warn")
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}
		defer func() {
			if err := zapLogger.Sync(); err != nil {
				log.Printf("failed to sync logger: %v", err)
			}
		}()

		connPool, err := postgres.NewConnPool(ctx, zapLogger, cfg)
		if err != nil {
			panic(err)
		}

		db := postgres.NewStdDB(connPool)
		if err := postgres.Migrate(ctx, db, "up"); err != nil {
			panic(err)
		}

		querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
		txInstance = tx.New(connPool)
	})

	return querierInstance
}

// GetTxManager менеджер транзакций поверх того же пула, что и GetQuerier.
func GetTxManager() *tx.Manager {
	GetQuerier()
	return txInstance
}

func databaseConfig(ctx context.Context) (*config.Database, error) {
	// godotenv.Load(.env.test) не вызываем так как Makefile подгружает их
	if host := os.Getenv("POSTGRES_HOST"); host != "" {
		return &config.Database{
			Host:     host,
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}, nil
	}

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     containerUser,
			"POSTGRES_PASSWORD": containerPassword,
			"POSTGRES_DB":       containerDB,
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	// контейнер живет до конца процесса тестов, его убирает reaper testcontainers
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("container port: %w", err)
	}

	return &config.Database{
		Host:     host,
		Port:     port.Port(),
		User:     containerUser,
		Password: containerPassword,
		DBName:   containerDB,
		SSLMode:  "disable",
	}, nil
}

func SetupDB(t *testing.T, setupSql string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	q := GetQuerier()
	if setupSql == "" {
		return
	}

	_, err := q.Exec(ctx, setupSql)
	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE delivery, product, customerorder, admins, drivers, users RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}
