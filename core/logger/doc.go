// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for either human-readable console
// output or JSON lines.
//
// # Run Correlation
//
// Every reconciliation run is tagged with a run_id field. WithRunID attaches a
// fresh UUID to the logger so that all entries of a single run can be
// correlated, even when several runs append to the same log sink.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log, runID := logger.WithRunID(log)
//	log.Info("Run started", zap.String("collection", name))
package logger
