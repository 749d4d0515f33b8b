package logrus_adapter

import (
	"fmt"
	"os"

	"brokerage/pkg/logger"

	"github.com/sirupsen/logrus"
)

type LogrusAdapter struct {
	entry *logrus.Entry
}

// NewLogrusAdapter альтернативный бэкенд логгера (LOGGER_ADAPTER=logrus).
func NewLogrusAdapter(level string) (*LogrusAdapter, error) {
	base := logrus.New()
	base.SetOutput(os.Stdout)
	base.SetFormatter(&logrus.JSONFormatter{})

	if level != "" {
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("parse log level %q: %w", level, err)
		}
		base.SetLevel(parsed)
	}

	return &LogrusAdapter{entry: logrus.NewEntry(base)}, nil
}

func (l *LogrusAdapter) Info(msg string, fields ...logger.Field) {
	l.entry.WithFields(convertFields(fields)).Info(msg)
}

func (l *LogrusAdapter) Warn(msg string, fields ...logger.Field) {
	l.entry.WithFields(convertFields(fields)).Warn(msg)
}

func (l *LogrusAdapter) Error(msg string, fields ...logger.Field) {
	l.entry.WithFields(convertFields(fields)).Error(msg)
}

func (l *LogrusAdapter) With(fields ...logger.Field) logger.Logger {
	if len(fields) == 0 {
		return l
	}
	return &LogrusAdapter{
		entry: l.entry.WithFields(convertFields(fields)),
	}
}

// Sync нужен для симметрии с zap адаптером, logrus пишет без буфера.
func (l *LogrusAdapter) Sync() error {
	return nil
}

func convertFields(fields []logger.Field) logrus.Fields {
	result := make(logrus.Fields, len(fields))
	for _, f := range fields {
		if err, ok := f.Value.(error); ok {
			result[f.Key] = err.Error()
			continue
		}
		result[f.Key] = f.Value
	}
	return result
}
