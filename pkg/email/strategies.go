package email

import "log/slog"

// Strategies returns every strategy in priority order: SMTP, Resend,
// Postmark, then the log fallback. Unconfigured strategies are included;
// callers pick the first that reports Configured.
func Strategies(cfg Config, log *slog.Logger) []Strategy {
	return []Strategy{
		NewSMTPSender(cfg.SMTP),
		NewResendSender(cfg.Resend),
		NewPostmarkSender(cfg.Postmark),
		NewLogSender(log, cfg.OutboxDir),
	}
}

// First returns the first configured strategy, or nil.
func First(strategies []Strategy) Strategy {
	for _, s := range strategies {
		if s != nil && s.Configured() {
			return s
		}
	}
	return nil
}
