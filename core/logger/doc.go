// Package logger builds the zap logger shared by the server and the CLI.
//
// Format "console" selects zap's development config (ISO8601 timestamps, colored
// levels), anything else the production JSON config. Level accepts every zapcore level
// name; an unknown name is an error.
//
// HTTP handlers derive a request logger with WithRayID so every entry of a reconcile
// request carries the same ray_id field:
//
//	l := logger.WithRayID(log, c)
//	l.Warn("Reconcile failed", zap.Error(err))
package logger
