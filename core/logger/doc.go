// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) for a CLI context.
//
// # Run Correlation
//
// Every invocation of the launcher is tagged with a run_id (a UUID) via the
// WithRunID helper, ensuring that all logs belonging to one launch can be
// correlated even when output from several runs is mixed together.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log = logger.WithRunID(log)
//	log.Info("Environment ready")
package logger
