package logger

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jwebster45206/tale-engine/internal/config"
)

// Setup configures the global slog logger based on environment.
// Game output owns stdout, so the caller picks the destination.
func Setup(cfg *config.Config, w io.Writer) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	if cfg.Environment == "production" {
		// JSON format for production
		handler = slog.NewJSONHandler(w, opts)
	} else {
		// Text format for development
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)

	// Set as default logger
	slog.SetDefault(logger)

	return logger
}

// WithSessionID adds a new session ID to the logger context.
func WithSessionID(logger *slog.Logger) (*slog.Logger, uuid.UUID) {
	id := uuid.New()
	return logger.With("session_id", id.String()), id
}

// WithError adds error to logger context
func WithError(logger *slog.Logger, err error) *slog.Logger {
	return logger.With("error", err.Error())
}
