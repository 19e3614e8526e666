package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/devcodecare/site/modules/contact"
	"github.com/devcodecare/site/modules/site"
	"github.com/devcodecare/site/pkg/clientip"
	"github.com/devcodecare/site/pkg/email"
	"github.com/devcodecare/site/pkg/httpserver"
	"github.com/devcodecare/site/pkg/logger"
	"github.com/devcodecare/site/pkg/ratelimit"
	"github.com/devcodecare/site/pkg/redis"
	"github.com/devcodecare/site/pkg/requestid"
)

const rateLimitKeyPrefix = "contact:"

// app holds the wired components of one process.
type app struct {
	cfg        *appConfig
	log        *slog.Logger
	limiter    *ratelimit.FixedWindow
	dispatcher *contact.Dispatcher
	metrics    *contact.Metrics
	resolver   site.Resolver
	readiness  []func(context.Context) error
	closers    []io.Closer
}

func newLogger(cfg *appConfig) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Environment(), cfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if level, set, err := cfg.logLevel(); set && err == nil {
		opts = append(opts, logger.WithLevel(level))
	}
	return logger.New(opts...)
}

func newDispatcher(cfg *appConfig, log *slog.Logger, metrics *contact.Metrics) *contact.Dispatcher {
	return contact.NewDispatcher(
		email.Strategies(cfg.Email, log.With(logger.Component("email"))),
		contact.WithRecipient(cfg.Contact.Recipient),
		contact.WithSendTimeout(cfg.Contact.SendTimeout),
		contact.WithDispatcherLogger(log),
		contact.WithDispatcherMetrics(metrics),
	)
}

// newApp builds every component. The caller must Close the returned app.
func newApp(ctx context.Context, cfg *appConfig, log *slog.Logger) (_ *app, err error) {
	a := &app{cfg: cfg, log: log}
	defer func() {
		if err != nil {
			_ = a.Close()
		}
	}()

	var store ratelimit.Store
	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		a.closers = append(a.closers, client)
		rs := ratelimit.NewRedisStore(client, "ratelimit:")
		a.readiness = append(a.readiness, rs.Ready)
		store = rs
		log.Info("rate limiter uses redis")
	} else {
		mem := ratelimit.NewMemoryStore()
		a.closers = append(a.closers, mem)
		store = mem
		log.Info("rate limiter uses process memory")
	}

	a.limiter, err = ratelimit.NewFixedWindow(store, cfg.RateLimit, ratelimit.WithKeyPrefix(rateLimitKeyPrefix))
	if err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	a.metrics, err = contact.NewMetrics(nil)
	if err != nil {
		return nil, fmt.Errorf("contact metrics: %w", err)
	}
	a.dispatcher = newDispatcher(cfg, log, a.metrics)

	if s := a.dispatcher.Strategy(); s != nil {
		log.Info("contact notifications configured", logger.Strategy(s.Name()))
	}

	a.resolver, err = site.NewResolver(ctx, cfg.Site)
	if err != nil {
		return nil, fmt.Errorf("static site: %w", err)
	}
	if c, ok := a.resolver.(io.Closer); ok {
		a.closers = append(a.closers, c)
	}
	a.readiness = append(a.readiness, siteReady(a.resolver))

	return a, nil
}

// siteReady reports whether index.html can be resolved.
func siteReady(r site.Resolver) func(context.Context) error {
	return func(ctx context.Context) error {
		asset, err := r.Open(ctx, site.IndexFile)
		if err != nil {
			return fmt.Errorf("static site: %w", err)
		}
		return asset.Body.Close()
	}
}

// Router returns the root HTTP handler.
func (a *app) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", httpserver.HealthCheckHandler(a.log))
	r.Get("/readyz", httpserver.HealthCheckHandler(a.log, a.readiness...))

	r.Mount("/api/contact", contact.Router(contact.RouterOptions{
		Submit: contact.NewHandler(a.limiter, a.dispatcher,
			contact.WithLogger(a.log.With(logger.Component("contact"))),
			contact.WithMetrics(a.metrics),
			contact.WithErrorDetail(a.cfg.ExposeErrorDetail()),
		),
	}))

	r.With(middleware.Compress(5)).Handle("/*", site.NewHandler(a.resolver, a.log.With(logger.Component("site"))))

	return r
}

// Close releases every resource in reverse order of acquisition.
func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
