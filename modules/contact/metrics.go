package contact

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/devcodecare/site/modules/contact"

// Submission results recorded by Metrics.
const (
	resultSent        = "sent"
	resultRateLimited = "rate_limited"
	resultBadRequest  = "bad_request"
	resultInvalid     = "invalid"
	resultFailed      = "failed"
	resultPanic       = "panic"
)

// Metrics holds the contact form instruments.
type Metrics struct {
	submissions metric.Int64Counter
	deliveries  metric.Int64Counter
	sendTime    metric.Float64Histogram
}

// NewMetrics creates the instruments on meter. A nil meter uses the global
// provider, which is a no-op until one is installed.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	if meter == nil {
		meter = otel.Meter(meterName)
	}

	submissions, err := meter.Int64Counter("contact_submissions_total",
		metric.WithDescription("Contact form requests by result"))
	if err != nil {
		return nil, err
	}
	deliveries, err := meter.Int64Counter("contact_email_deliveries_total",
		metric.WithDescription("Contact notification sends by strategy and status"))
	if err != nil {
		return nil, err
	}
	sendTime, err := meter.Float64Histogram("contact_email_send_duration_seconds",
		metric.WithDescription("Time spent sending a contact notification"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}

	return &Metrics{
		submissions: submissions,
		deliveries:  deliveries,
		sendTime:    sendTime,
	}, nil
}

func (m *Metrics) submission(ctx context.Context, result string) {
	if m == nil {
		return
	}
	m.submissions.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}

func (m *Metrics) delivery(ctx context.Context, strategy string, ok bool, d time.Duration) {
	if m == nil {
		return
	}
	status := "success"
	if !ok {
		status = "failure"
	}
	attrs := metric.WithAttributes(
		attribute.String("strategy", strategy),
		attribute.String("status", status),
	)
	m.deliveries.Add(ctx, 1, attrs)
	m.sendTime.Record(ctx, d.Seconds(), attrs)
}
