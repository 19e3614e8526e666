package email

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/devcodecare/site/pkg/logger"
	"github.com/devcodecare/site/pkg/sanitizer"
)

// LogSender is the fallback strategy. It never delivers: the message is
// written to the log and, when an outbox directory is set, saved as an .html
// and a .json file for inspection during development.
type LogSender struct {
	log *slog.Logger
	dir string
	now func() time.Time
}

// NewLogSender creates the log fallback. dir may be empty.
func NewLogSender(log *slog.Logger, dir string) *LogSender {
	return &LogSender{
		log: logger.OrDefault(log),
		dir: dir,
		now: time.Now,
	}
}

func (s *LogSender) Name() string { return "log" }

// Configured is always true.
func (s *LogSender) Configured() bool { return true }

type outboxMetadata struct {
	Timestamp string `json:"timestamp"`
	To        string `json:"to"`
	ReplyTo   string `json:"reply_to,omitempty"`
	Subject   string `json:"subject"`
	Tag       string `json:"tag,omitempty"`
	Text      string `json:"text"`
}

// Send logs m at INFO and writes the outbox copy. It always succeeds: the
// message is already in the log, so an outbox failure is logged at WARN.
func (s *LogSender) Send(ctx context.Context, m Message) error {
	s.log.InfoContext(ctx, "email logged instead of sent",
		logger.Strategy(s.Name()),
		slog.String("to", m.To),
		slog.String("reply_to", m.ReplyTo),
		slog.String("subject", m.Subject),
		slog.String("body", m.Text),
	)

	if s.dir == "" {
		return nil
	}
	if err := s.writeOutbox(m); err != nil {
		s.log.WarnContext(ctx, "email outbox write failed",
			logger.Strategy(s.Name()),
			slog.String("dir", s.dir),
			logger.Error(err),
		)
	}
	return nil
}

func (s *LogSender) writeOutbox(m Message) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%w: create outbox: %w", ErrFailedToSendEmail, err)
	}

	now := s.now()
	identifier := m.Tag
	if identifier == "" {
		identifier = m.Subject
	}
	base := fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405.000000000"), sanitizer.SanitizeFilename(identifier))

	if err := os.WriteFile(filepath.Join(s.dir, base+".html"), []byte(m.HTML), 0o644); err != nil {
		return fmt.Errorf("%w: write html: %w", ErrFailedToSendEmail, err)
	}

	data, err := json.MarshalIndent(outboxMetadata{
		Timestamp: now.Format(time.RFC3339),
		To:        m.To,
		ReplyTo:   m.ReplyTo,
		Subject:   m.Subject,
		Tag:       m.Tag,
		Text:      m.Text,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode metadata: %w", ErrFailedToSendEmail, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, base+".json"), data, 0o644); err != nil {
		return fmt.Errorf("%w: write metadata: %w", ErrFailedToSendEmail, err)
	}
	return nil
}
