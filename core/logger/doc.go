// Package logger provides a structured logging facility based on Zap.
//
// All output goes to stderr, which is the diagnostic stream of the command
// line tool; stdout is reserved for the rebuilt balance table.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: console (default) or json
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	log.Info("Processing balance.xml")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
