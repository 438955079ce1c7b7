package logger

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration settings.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// MinLevel determines which records are mirrored to Sentry.
	MinLevel slog.Level
}

// attachSentry combines the local handler with a Sentry handler.
// Degrades gracefully: with an empty DSN or a failed SDK init the local
// handler is returned unchanged.
func attachSentry(local slog.Handler, cfg SentryConfig) slog.Handler {
	if cfg.DSN == "" {
		return local
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(local).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return local
	}

	eventLevel := []slog.Level{slog.LevelError}
	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel == slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	sentryHandler := sentryslog.Option{
		EventLevel: eventLevel,
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	return newMultiHandler(local, sentryHandler)
}
