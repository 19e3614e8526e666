package email

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
)

// SMTPClient is the subset of *mail.Client used by SMTPSender.
type SMTPClient interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// SMTPSender delivers through an SMTP relay.
type SMTPSender struct {
	cfg    SMTPConfig
	client SMTPClient
}

// SMTPOption configures an SMTPSender.
type SMTPOption func(*SMTPSender)

// WithSMTPClient replaces the go-mail client, typically with a test double.
func WithSMTPClient(c SMTPClient) SMTPOption {
	return func(s *SMTPSender) {
		s.client = c
	}
}

// NewSMTPSender creates an SMTP strategy. The connection is opened per send.
func NewSMTPSender(cfg SMTPConfig, opts ...SMTPOption) *SMTPSender {
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	if cfg.From == "" {
		cfg.From = cfg.User
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	s := &SMTPSender{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SMTPSender) Name() string { return "smtp" }

func (s *SMTPSender) Configured() bool {
	return s.cfg.Host != "" && s.cfg.User != "" && s.cfg.Password != ""
}

// Send builds a multipart text/HTML message and delivers it.
func (s *SMTPSender) Send(ctx context.Context, m Message) error {
	if !s.Configured() {
		return ErrNotConfigured
	}
	if err := m.Validate(); err != nil {
		return err
	}

	msg, err := s.buildMessage(m)
	if err != nil {
		return err
	}

	client := s.client
	if client == nil {
		c, err := s.newClient()
		if err != nil {
			return err
		}
		client = c
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToSendEmail, err)
	}
	return nil
}

func (s *SMTPSender) buildMessage(m Message) (*mail.Msg, error) {
	msg := mail.NewMsg()

	if err := msg.FromFormat(s.cfg.FromName, s.cfg.From); err != nil {
		return nil, fmt.Errorf("%w: from address: %w", ErrInvalidConfig, err)
	}
	if err := msg.To(m.To); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMessage, err)
	}
	if m.ReplyTo != "" {
		if err := msg.ReplyTo(m.ReplyTo); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidMessage, err)
		}
	}
	msg.Subject(m.Subject)
	msg.SetDate()
	msg.SetMessageID()

	switch {
	case m.Text != "" && m.HTML != "":
		msg.SetBodyString(mail.TypeTextPlain, m.Text)
		msg.AddAlternativeString(mail.TypeTextHTML, m.HTML)
	case m.HTML != "":
		msg.SetBodyString(mail.TypeTextHTML, m.HTML)
	default:
		msg.SetBodyString(mail.TypeTextPlain, m.Text)
	}

	return msg, nil
}

func (s *SMTPSender) newClient() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.User),
		mail.WithPassword(s.cfg.Password),
		mail.WithTimeout(s.cfg.Timeout),
	}
	if s.cfg.Secure || s.cfg.Port == 465 {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: smtp client: %w", ErrInvalidConfig, err)
	}
	return client, nil
}
