package email

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
)

// Strategy is one way of delivering a Message. A dispatcher holds strategies
// in priority order and uses the first one that reports itself configured.
type Strategy interface {
	// Name identifies the strategy in logs and metrics, e.g. "smtp".
	Name() string
	// Configured reports whether the strategy has the settings it needs.
	Configured() bool
	// Send delivers m. It must honour ctx cancellation.
	Send(ctx context.Context, m Message) error
}

// Message is a provider-agnostic outgoing email.
type Message struct {
	To      string `json:"to"`
	ReplyTo string `json:"reply_to,omitempty"`
	Subject string `json:"subject"`
	HTML    string `json:"-"`
	Text    string `json:"-"`
	Tag     string `json:"tag,omitempty"`
}

// Validate checks the fields every provider needs.
func (m Message) Validate() error {
	if _, err := mail.ParseAddress(m.To); err != nil {
		return fmt.Errorf("%w: invalid recipient %q", ErrInvalidMessage, m.To)
	}
	if m.ReplyTo != "" {
		if _, err := mail.ParseAddress(m.ReplyTo); err != nil {
			return fmt.Errorf("%w: invalid reply-to %q", ErrInvalidMessage, m.ReplyTo)
		}
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidMessage)
	}
	if m.HTML == "" && m.Text == "" {
		return fmt.Errorf("%w: body is required", ErrInvalidMessage)
	}
	return nil
}
