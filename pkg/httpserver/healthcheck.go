package httpserver

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/devcodecare/site/pkg/logger"
)

// CheckTimeout bounds every readiness dependency check.
const CheckTimeout = 2 * time.Second

// HealthCheckHandler returns a HTTP handler that can be used for both
// liveness and readiness probes.
//
//   - Liveness: when no dependency functions are supplied the handler simply
//     returns 200 OK with body "ALIVE".
//   - Readiness: when one or more dependency functions are supplied they run
//     concurrently; if they all succeed the handler returns 200 OK with body
//     "READY". The first error cancels the remaining checks and the handler
//     returns 503 Service Unavailable with body "NOT_READY".
func HealthCheckHandler(log *slog.Logger, funcs ...func(context.Context) error) http.HandlerFunc {
	log = logger.OrDefault(log)
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")

		if len(funcs) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), CheckTimeout)
		defer cancel()

		g, gctx := errgroup.WithContext(ctx)
		for _, f := range funcs {
			g.Go(func() error { return f(gctx) })
		}
		if err := g.Wait(); err != nil {
			log.ErrorContext(ctx, "readiness check failed", logger.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("NOT_READY"))
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
