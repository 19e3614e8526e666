package contact_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"

	"github.com/devcodecare/site/modules/contact"
	"github.com/devcodecare/site/pkg/email"
)

func sampleSubmission() contact.Submission {
	return contact.Submission{
		Name:    "Jo Smith",
		Email:   "jo@example.com",
		Subject: "Hello",
		Service: contact.ServiceWeb,
		Message: "I would like a new website.",
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestDispatcherUsesFirstConfigured(t *testing.T) {
	t.Parallel()

	smtp := &fakeStrategy{name: "smtp", configured: true}
	api := &fakeStrategy{name: "resend", configured: true}
	d := contact.NewDispatcher([]email.Strategy{smtp, api},
		contact.WithRecipient("owner@example.com"),
		contact.WithDispatcherLogger(discardLogger()),
	)

	out := d.Send(context.Background(), sampleSubmission())

	assert.True(t, out.Success)
	assert.Equal(t, contact.MessageSent, out.Message)
	assert.Equal(t, "smtp", out.Strategy)
	assert.NoError(t, out.Err)
	assert.Equal(t, 1, smtp.calls())
	assert.Zero(t, api.calls(), "API strategy must not run when SMTP is configured")

	msg := smtp.last()
	assert.Equal(t, "owner@example.com", msg.To)
	assert.Equal(t, "jo@example.com", msg.ReplyTo)
	assert.Equal(t, "Contact Form [Web Development]: Hello", msg.Subject)
	assert.True(t, smtp.hadDeadline(), "send runs under a timeout")
}

func TestDispatcherSkipsUnconfigured(t *testing.T) {
	t.Parallel()

	smtp := &fakeStrategy{name: "smtp"}
	api := &fakeStrategy{name: "resend", configured: true}
	d := contact.NewDispatcher([]email.Strategy{smtp, api}, contact.WithDispatcherLogger(discardLogger()))

	out := d.Send(context.Background(), sampleSubmission())

	assert.True(t, out.Success)
	assert.Equal(t, "resend", out.Strategy)
	assert.Zero(t, smtp.calls())
	assert.Equal(t, contact.DefaultRecipient, api.last().To)
}

func TestDispatcherDoesNotCascade(t *testing.T) {
	t.Parallel()

	sendErr := errors.New("535 authentication failed")
	smtp := &fakeStrategy{name: "smtp", configured: true, err: sendErr}
	api := &fakeStrategy{name: "resend", configured: true}
	d := contact.NewDispatcher([]email.Strategy{smtp, api}, contact.WithDispatcherLogger(discardLogger()))

	out := d.Send(context.Background(), sampleSubmission())

	assert.False(t, out.Success)
	assert.Equal(t, "smtp", out.Strategy)
	assert.ErrorIs(t, out.Err, sendErr)
	assert.Equal(t, "Failed to send message: 535 authentication failed", out.Message)
	assert.Zero(t, api.calls())
}

func TestDispatcherLogFallback(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	strategies := email.Strategies(email.Config{}, log)
	d := contact.NewDispatcher(strategies, contact.WithDispatcherLogger(log))

	for range 3 {
		out := d.Send(context.Background(), sampleSubmission())
		assert.True(t, out.Success)
		assert.Equal(t, contact.MessageLogged, out.Message)
		assert.Equal(t, "log", out.Strategy)
	}
	assert.Contains(t, buf.String(), "I would like a new website.")
}

func TestDispatcherLogFallbackWithBrokenOutbox(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "outbox")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	strategies := email.Strategies(email.Config{OutboxDir: filepath.Join(file, "mail")}, discardLogger())
	d := contact.NewDispatcher(strategies, contact.WithDispatcherLogger(discardLogger()))

	out := d.Send(context.Background(), sampleSubmission())
	assert.True(t, out.Success)
	assert.Equal(t, contact.MessageLogged, out.Message)
	assert.Equal(t, "log", out.Strategy)
	assert.NoError(t, out.Err)
}

func TestDispatcherNoStrategy(t *testing.T) {
	t.Parallel()

	d := contact.NewDispatcher(nil, contact.WithDispatcherLogger(discardLogger()))
	out := d.Send(context.Background(), sampleSubmission())

	assert.False(t, out.Success)
	assert.ErrorIs(t, out.Err, contact.ErrNoStrategy)
}

func TestDispatcherTimeout(t *testing.T) {
	t.Parallel()

	slow := &fakeStrategy{name: "smtp", configured: true, block: true}
	d := contact.NewDispatcher([]email.Strategy{slow},
		contact.WithSendTimeout(20*time.Millisecond),
		contact.WithDispatcherLogger(discardLogger()),
	)

	start := time.Now()
	out := d.Send(context.Background(), sampleSubmission())

	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.False(t, out.Success)
	assert.ErrorIs(t, out.Err, contact.ErrSendTimeout)
	assert.ErrorIs(t, out.Err, context.DeadlineExceeded)
}

func TestDispatcherIgnoresCallerCancellation(t *testing.T) {
	t.Parallel()

	smtp := &fakeStrategy{name: "smtp", configured: true}
	d := contact.NewDispatcher([]email.Strategy{smtp}, contact.WithDispatcherLogger(discardLogger()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := d.Send(ctx, sampleSubmission())

	assert.True(t, out.Success, "a disconnected client does not abort the send")
	assert.Equal(t, 1, smtp.calls())
}

func TestDispatcherRecoversPanic(t *testing.T) {
	t.Parallel()

	bad := &fakeStrategy{name: "smtp", configured: true, panicWith: "nil transport"}
	d := contact.NewDispatcher([]email.Strategy{bad}, contact.WithDispatcherLogger(discardLogger()))

	var out contact.Outcome
	require.NotPanics(t, func() { out = d.Send(context.Background(), sampleSubmission()) })

	assert.False(t, out.Success)
	assert.ErrorIs(t, out.Err, contact.ErrUnexpectedFault)
	assert.Contains(t, out.Err.Error(), "nil transport")
}

type countingSMTP struct{ calls atomic.Int32 }

func (c *countingSMTP) DialAndSendWithContext(context.Context, ...*mail.Msg) error {
	c.calls.Add(1)
	return nil
}

func TestDispatcherSMTPShadowsHTTPAPI(t *testing.T) {
	t.Parallel()

	var apiHits atomic.Int32
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apiHits.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(api.Close)

	smtpClient := &countingSMTP{}
	strategies := []email.Strategy{
		email.NewSMTPSender(email.SMTPConfig{Host: "smtp.example.com", User: "mailer@example.com", Password: "secret"},
			email.WithSMTPClient(smtpClient)),
		email.NewResendSender(email.ResendConfig{APIKey: "re_test", From: "site@example.com", Endpoint: api.URL}),
		email.NewLogSender(discardLogger(), ""),
	}
	d := contact.NewDispatcher(strategies, contact.WithDispatcherLogger(discardLogger()))

	for range 3 {
		out := d.Send(context.Background(), sampleSubmission())
		require.True(t, out.Success, out.Message)
		assert.Equal(t, "smtp", out.Strategy)
	}
	assert.EqualValues(t, 3, smtpClient.calls.Load())
	assert.Zero(t, apiHits.Load())
}
