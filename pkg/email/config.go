package email

import "time"

// Config holds the settings of every delivery strategy. Each strategy is
// optional; an empty section leaves the strategy unconfigured.
type Config struct {
	SMTP     SMTPConfig
	Resend   ResendConfig
	Postmark PostmarkConfig

	// OutboxDir makes the log fallback also write each message to disk.
	OutboxDir string `env:"EMAIL_OUTBOX_DIR"`
}

// SMTPConfig configures SMTPSender. Host, User and Password must all be set.
type SMTPConfig struct {
	Host     string `env:"SMTP_HOST"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	User     string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASSWORD"`
	// Secure forces implicit TLS. Port 465 implies it.
	Secure   bool          `env:"SMTP_SECURE"`
	From     string        `env:"SMTP_FROM"`
	FromName string        `env:"SMTP_FROM_NAME" envDefault:"DevCodeCare Contact Form"`
	Timeout  time.Duration `env:"SMTP_TIMEOUT" envDefault:"10s"`
}

// ResendConfig configures ResendSender.
type ResendConfig struct {
	APIKey   string `env:"RESEND_API_KEY"`
	From     string `env:"RESEND_FROM" envDefault:"DevCodeCare Contact Form <onboarding@resend.dev>"`
	Endpoint string `env:"RESEND_ENDPOINT" envDefault:"https://api.resend.com/emails"`
}

// PostmarkConfig configures PostmarkSender.
type PostmarkConfig struct {
	ServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	AccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	From         string `env:"POSTMARK_FROM"`
}
