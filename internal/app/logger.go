package app

import (
	"brokerage/internal/pkg/config"
	"brokerage/pkg/logger"
	"brokerage/pkg/logger/logrus_adapter"
	"brokerage/pkg/logger/zap_adapter"
)

// SyncLogger логгер с буфером, который нужно сбросить перед выходом.
type SyncLogger interface {
	logger.Logger
	Sync() error
}

// NewLogger выбирает бэкенд по LOGGER_ADAPTER, значение уже провалидировано config.Load.
func NewLogger(cfg config.App) (SyncLogger, error) {
	if cfg.LoggerAdapter == "logrus" {
		logrusLogger, err := logrus_adapter.NewLogrusAdapter(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		return logrusLogger, nil
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return zapLogger, nil
}
