// Package email delivers outgoing mail through interchangeable strategies.
//
// Every strategy implements Strategy:
//
//   - SMTPSender: any SMTP relay, via github.com/wneessen/go-mail. Implicit
//     TLS on port 465 or when Secure is set, opportunistic STARTTLS otherwise.
//   - ResendSender: the Resend HTTP API, one JSON POST per message.
//   - PostmarkSender: Postmark, via github.com/mrz1836/postmark.
//   - LogSender: writes the message to the log and optionally to an outbox
//     directory. Always configured, never delivers.
//
// Strategies builds them in that priority order from a Config loaded from the
// environment, and First picks the first configured one:
//
//	cfg, _ := config.Load[email.Config]()
//	sender := email.First(email.Strategies(cfg, log))
//	err := sender.Send(ctx, email.Message{
//	    To:      "contact@devcodecare.in",
//	    ReplyTo: "visitor@example.com",
//	    Subject: "Contact Form: Hello",
//	    Text:    "...",
//	    HTML:    "...",
//	})
//
// Delivery failures wrap ErrFailedToSendEmail. Provider rejections are
// *APIError values whose message comes from the provider when available.
//
// HTML bodies are usually built with templ components and rendered with
// templates.Render.
package email
