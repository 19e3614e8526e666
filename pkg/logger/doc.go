// Package logger builds the site's *slog.Logger.
//
// New applies functional options on top of production-safe defaults (JSON,
// INFO, stdout) and runs registered ContextExtractor callbacks on every record.
// This is how the request id set by pkg/requestid ends up on every log line
// written while a request is being served. A key the call site already logged
// is not added a second time.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "devcodecare-site"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "contact submission delivered",
//	    logger.Strategy("smtp"),
//	    logger.Duration(time.Since(start)),
//	)
//
// Attribute helpers (Error, ClientIP, Strategy, ...) keep key names consistent
// across packages.
package logger
