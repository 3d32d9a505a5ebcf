// Package observability provides logging and metrics.
package observability

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger to provide specialized logging methods.
type Logger struct {
	*slog.Logger
}

// GlobalLogger is the default logger instance for the application.
var GlobalLogger *Logger

func init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	GlobalLogger = &Logger{Logger: slog.New(handler)}
}

// StoreLogger provides structured logging for store operations.
type StoreLogger struct {
	store  string
	logger *Logger
}

// NewStoreLogger creates a new StoreLogger for the given store.
func NewStoreLogger(store string) *StoreLogger {
	return &StoreLogger{store: store, logger: GlobalLogger}
}

// LogMutation logs a store mutation.
func (l *StoreLogger) LogMutation(operation string, fields map[string]interface{}) {
	attrs := []any{
		slog.String("store", l.store),
		slog.String("operation", operation),
	}
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	l.logger.Info("store mutation", attrs...)
}

// LogWarn logs a recoverable store fault.
func (l *StoreLogger) LogWarn(operation string, err error) {
	l.logger.Warn("store warning",
		slog.String("store", l.store),
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	)
}
