package logger

import (
	"io"
	"log/slog"
	"os"
)

// config collects factory settings before handler construction.
type config struct {
	writer     io.Writer
	level      slog.Level
	text       bool
	extractors []ContextExtractor
	sentry     *SentryConfig
}

// Option configures the logger factory.
type Option func(*config)

// WithLevel sets the minimum log level. Defaults to slog.LevelInfo.
func WithLevel(level slog.Level) Option {
	return func(c *config) {
		c.level = level
	}
}

// WithWriter sets the log destination. Defaults to os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.writer = w
		}
	}
}

// WithText switches from JSON to human-readable text output.
func WithText() Option {
	return func(c *config) {
		c.text = true
	}
}

// WithExtractors adds context extractors that inject request-scoped
// attributes into every log record.
func WithExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		c.extractors = append(c.extractors, extractors...)
	}
}

// WithSentry mirrors warn/error records to Sentry. An empty DSN leaves
// the logger local-only, so the same code path works in development.
func WithSentry(cfg SentryConfig) Option {
	return func(c *config) {
		c.sentry = &cfg
	}
}

// New creates a structured logger. Without options it writes JSON to
// stdout at info level.
func New(opts ...Option) *slog.Logger {
	c := &config{writer: os.Stdout, level: slog.LevelInfo}
	for _, opt := range opts {
		opt(c)
	}

	ho := &slog.HandlerOptions{Level: c.level}
	var handler slog.Handler
	if c.text {
		handler = slog.NewTextHandler(c.writer, ho)
	} else {
		handler = slog.NewJSONHandler(c.writer, ho)
	}

	if c.sentry != nil {
		handler = attachSentry(handler, *c.sentry)
	}

	return slog.New(newContextHandler(handler, c.extractors...))
}

// NewNope creates a no-op logger that discards all output. Use it as the
// default when logging is not configured.
func NewNope() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
