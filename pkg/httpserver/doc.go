// Package httpserver provides a lightweight wrapper around net/http that adds
// graceful shutdown, configurable server timeouts, health-check handlers and
// structured logging via slog.
//
// Construction is done through New or NewFromConfig together with Option
// helpers such as WithAddr, WithReadTimeout and WithLogger. Run binds the
// listener first, so start hooks and Addr observe the real address even when
// the configured one uses port 0.
//
// Run blocks until its context is cancelled. Callers that want to stop on
// SIGINT or SIGTERM derive that context with signal.NotifyContext.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.HealthCheckHandler(log))
//	r.Get("/readyz", httpserver.HealthCheckHandler(log, store.Ready, siteReady))
//
//	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//	defer stop()
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run joins listen errors with ErrStart, while Shutdown joins underlying
// shutdown errors with ErrShutdown. Use errors.Is to distinguish them.
package httpserver
