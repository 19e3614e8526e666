package email

import (
	"context"
	"fmt"

	"github.com/mrz1836/postmark"
)

// PostmarkAPI is the subset of *postmark.Client used by PostmarkSender.
type PostmarkAPI interface {
	SendEmail(ctx context.Context, email postmark.Email) (postmark.EmailResponse, error)
}

// PostmarkSender delivers through Postmark's transactional API.
type PostmarkSender struct {
	cfg    PostmarkConfig
	client PostmarkAPI
}

// PostmarkOption configures a PostmarkSender.
type PostmarkOption func(*PostmarkSender)

// WithPostmarkClient replaces the Postmark API client.
func WithPostmarkClient(c PostmarkAPI) PostmarkOption {
	return func(s *PostmarkSender) {
		s.client = c
	}
}

// NewPostmarkSender creates a Postmark strategy. It is configured once a
// server token and a sender address are present.
func NewPostmarkSender(cfg PostmarkConfig, opts ...PostmarkOption) *PostmarkSender {
	s := &PostmarkSender{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil && cfg.ServerToken != "" {
		s.client = postmark.NewClient(cfg.ServerToken, cfg.AccountToken)
	}
	return s
}

func (s *PostmarkSender) Name() string { return "postmark" }

func (s *PostmarkSender) Configured() bool {
	return s.cfg.ServerToken != "" && s.cfg.From != "" && s.client != nil
}

// Send implements Strategy. Tracking stays off: these are internal
// notifications, not marketing mail.
func (s *PostmarkSender) Send(ctx context.Context, m Message) error {
	if !s.Configured() {
		return ErrNotConfigured
	}
	if err := m.Validate(); err != nil {
		return err
	}

	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:     s.cfg.From,
		To:       m.To,
		ReplyTo:  m.ReplyTo,
		Subject:  m.Subject,
		Tag:      m.Tag,
		HTMLBody: m.HTML,
		TextBody: m.Text,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode > 0 {
		return &APIError{
			StatusCode: int(resp.ErrorCode),
			Message:    fmt.Sprintf("postmark error %d: %s", resp.ErrorCode, resp.Message),
		}
	}
	return nil
}
