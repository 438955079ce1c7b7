// Package logger provides the structured logging factory used across
// msgkit, built on log/slog.
//
// The factory is option-driven: output format, level, destination,
// context extractors, and optional Sentry mirroring are all configured
// at construction.
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithExtractors(requestIDExtractor),
//	)
//
// Context extractors inject request-scoped attributes (request IDs, user
// IDs) into every record. Sentry integration degrades gracefully: with an
// empty DSN the logger stays local-only, so one code path serves both
// development and production.
package logger
