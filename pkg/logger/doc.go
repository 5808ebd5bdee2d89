// Package logger builds context-aware slog loggers for storefront services.
//
// New creates a *slog.Logger configured by functional options: output format
// (text or json), minimum level, static attributes and ContextExtractor
// callbacks that pull request-scoped values (such as a request id) out of
// context.Context on every record.
//
// Attribute helpers in attr.go keep key names consistent across packages:
//
//	log := logger.New(logger.ForEnvironment("development", "storefront"))
//	log.Debug("toast added",
//	    logger.ToastID(id),
//	    logger.Kind("success"),
//	    logger.Duration(5*time.Second),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
