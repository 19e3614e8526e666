package contact

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/devcodecare/site/pkg/email"
	"github.com/devcodecare/site/pkg/logger"
)

// DefaultRecipient receives notifications unless overridden.
const DefaultRecipient = "contact@devcodecare.in"

// DefaultSendTimeout bounds a single send.
const DefaultSendTimeout = 10 * time.Second

// Outcome messages.
const (
	MessageSent   = "Your message has been sent. Thank you!"
	MessageLogged = "Message logged (development mode)"
)

// Outcome is the result of one dispatch.
type Outcome struct {
	Success bool
	Message string
	// Strategy names the strategy that handled the send, if any.
	Strategy string
	// Err is the underlying delivery error. It is never shown to visitors
	// unless error detail is exposed.
	Err error
}

// Sender delivers a validated submission.
type Sender interface {
	Send(ctx context.Context, s Submission) Outcome
}

// Dispatcher sends submissions through the first configured strategy. A
// failure of that strategy is final: later strategies are not tried.
type Dispatcher struct {
	strategies []email.Strategy
	recipient  string
	timeout    time.Duration
	log        *slog.Logger
	metrics    *Metrics
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithRecipient sets the notification address.
func WithRecipient(addr string) DispatcherOption {
	return func(d *Dispatcher) {
		if addr != "" {
			d.recipient = addr
		}
	}
}

// WithSendTimeout overrides DefaultSendTimeout.
func WithSendTimeout(timeout time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		if timeout > 0 {
			d.timeout = timeout
		}
	}
}

// WithDispatcherLogger sets the logger.
func WithDispatcherLogger(log *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.log = logger.OrDefault(log)
	}
}

// WithDispatcherMetrics records deliveries on m.
func WithDispatcherMetrics(m *Metrics) DispatcherOption {
	return func(d *Dispatcher) {
		d.metrics = m
	}
}

// NewDispatcher creates a dispatcher over strategies in priority order.
func NewDispatcher(strategies []email.Strategy, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		strategies: strategies,
		recipient:  DefaultRecipient,
		timeout:    DefaultSendTimeout,
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Strategy returns the strategy Send would use, or nil.
func (d *Dispatcher) Strategy() email.Strategy {
	return email.First(d.strategies)
}

// Send renders s and hands it to the selected strategy. The send is detached
// from ctx cancellation so a client disconnect does not abort it, and is
// bounded by the send timeout. Panics inside the strategy are recovered and
// reported as a failed Outcome wrapping ErrUnexpectedFault.
func (d *Dispatcher) Send(ctx context.Context, s Submission) Outcome {
	strategy := d.Strategy()
	if strategy == nil {
		d.log.ErrorContext(ctx, "contact notification not sent", logger.Error(ErrNoStrategy))
		return failed("", ErrNoStrategy)
	}
	name := strategy.Name()

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
	defer cancel()

	msg, err := BuildMessage(ctx, s, d.recipient)
	if err != nil {
		d.log.ErrorContext(ctx, "render contact notification", logger.Strategy(name), logger.Error(err))
		return failed(name, err)
	}

	start := time.Now()
	err = d.deliver(ctx, strategy, msg)
	elapsed := time.Since(start)
	d.metrics.delivery(ctx, name, err == nil, elapsed)

	if err != nil {
		d.log.ErrorContext(ctx, "contact notification failed",
			logger.Strategy(name),
			logger.Duration(elapsed),
			logger.Error(err),
		)
		return failed(name, err)
	}

	d.log.InfoContext(ctx, "contact notification sent",
		logger.Strategy(name),
		logger.Duration(elapsed),
	)

	out := Outcome{Success: true, Message: MessageSent, Strategy: name}
	if _, logged := strategy.(*email.LogSender); logged {
		out.Message = MessageLogged
	}
	return out
}

// deliver runs the strategy in its own goroutine so a strategy that ignores
// ctx still cannot hold the request past the timeout.
func (d *Dispatcher) deliver(ctx context.Context, strategy email.Strategy, msg email.Message) error {
	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("%w: %v", ErrUnexpectedFault, r)
			}
		}()
		done <- strategy.Send(ctx, msg)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("%w after %s: %w", ErrSendTimeout, d.timeout, ctx.Err())
	}
}

func failed(strategy string, err error) Outcome {
	return Outcome{
		Strategy: strategy,
		Message:  "Failed to send message: " + err.Error(),
		Err:      err,
	}
}
