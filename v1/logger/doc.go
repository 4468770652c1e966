// Package logger provides structured logging for schemasync.
//
// It wraps Uber's zap with a small API that takes a message, an optional error and
// optional field maps. Components accept a Logger interface of their own with the
// same method set, so *logger.Logger can be passed anywhere and tests can pass mocks.
//
// Basic Usage:
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:         "info",
//		ServiceName:   "schemasync",
//		EnableTracing: true,
//	})
//
//	log.Info("Schema registered", nil, map[string]interface{}{
//		"subject": "orders-value",
//	})
//
//	// With an active span in ctx, trace_id and span_id are attached.
//	log.InfoWithContext(ctx, "Registering schemas", nil, nil)
//
// FX Module Integration:
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Supply(logger.Config{Level: "debug"}),
//	)
//
// Configuration:
//
//	ZAP_LOGGER_LEVEL=debug          # debug, info, warning, error
//	LOGGER_ENABLE_TRACING=true      # add trace ids to *WithContext entries
//
// Entries are written to stderr so that report tables printed on stdout stay clean.
//
// All methods are safe for concurrent use by multiple goroutines.
package logger
