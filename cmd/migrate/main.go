package main

import (
	"context"
	"flag"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"brokerage/internal/pkg/config"
	"brokerage/internal/pkg/postgres"
	"brokerage/pkg/logger"
	"brokerage/pkg/logger/zap_adapter"

	"github.com/joho/godotenv"
)

// migrate up | down | status | redo | version | reset | up-to VERSION ...
func main() {
	flag.Usage = func() {
		stdlog.Printf("usage: %s <command> [args]", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.App.LogLevel)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	log := zapLogger.With(logger.NewField("command", args[0]))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	pool, err := postgres.NewConnPool(ctx, zapLogger, &cfg.Database)
	if err != nil {
		log.Error("database", logger.NewField("error", err))
		return
	}
	defer pool.Close()

	db := postgres.NewStdDB(pool)
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("failed to close sql.DB", logger.NewField("error", err))
		}
	}()

	err = postgres.Migrate(ctx, db, args[0], args[1:]...)
	if err != nil {
		log.Error("migration failed", logger.NewField("error", err))
		return
	}
	log.Info("migration done")
}
