// Package logger provides structured logging based on Zap.
//
// The debug level selects zap's development configuration; every other level
// uses the production configuration. Output is json unless the console format
// is requested.
//
// WithRayID attaches the request ray id stored by the rayid middleware so that
// every line logged while serving a code lookup can be correlated.
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	l := logger.WithRayID(log, c)
//	l.Error("Lookup failed", zap.Error(err))
package logger
