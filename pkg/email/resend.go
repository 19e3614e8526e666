package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultResendEndpoint = "https://api.resend.com/emails"

// maxErrorBody bounds how much of a provider error response is read.
const maxErrorBody = 64 << 10

// ResendSender delivers through the Resend HTTP API with a single POST.
type ResendSender struct {
	cfg    ResendConfig
	client *http.Client
}

// ResendOption configures a ResendSender.
type ResendOption func(*ResendSender)

// WithHTTPClient sets the HTTP client used for API calls.
func WithHTTPClient(c *http.Client) ResendOption {
	return func(s *ResendSender) {
		if c != nil {
			s.client = c
		}
	}
}

// NewResendSender creates a Resend strategy.
func NewResendSender(cfg ResendConfig, opts ...ResendOption) *ResendSender {
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultResendEndpoint
	}
	s := &ResendSender{
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ResendSender) Name() string { return "resend" }

func (s *ResendSender) Configured() bool { return s.cfg.APIKey != "" }

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	ReplyTo string   `json:"reply_to,omitempty"`
	HTML    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

type resendError struct {
	Message string `json:"message"`
}

// Send posts m to the API. A non-2xx reply becomes an *APIError carrying the
// provider's message when the body is JSON with a "message" field.
func (s *ResendSender) Send(ctx context.Context, m Message) error {
	if !s.Configured() {
		return ErrNotConfigured
	}
	if err := m.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(resendRequest{
		From:    s.cfg.From,
		To:      []string{m.To},
		Subject: m.Subject,
		ReplyTo: m.ReplyTo,
		HTML:    m.HTML,
		Text:    m.Text,
	})
	if err != nil {
		return fmt.Errorf("%w: encode request: %w", ErrFailedToSendEmail, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: build request: %w", ErrFailedToSendEmail, err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToSendEmail, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("email API request failed with status %d", resp.StatusCode),
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var parsed resendError
	if json.Unmarshal(body, &parsed) == nil && parsed.Message != "" {
		apiErr.Message = parsed.Message
	}
	return apiErr
}
