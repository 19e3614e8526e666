package contact

import (
	"context"
	"strings"

	"github.com/a-h/templ"

	"github.com/devcodecare/site/pkg/email"
	"github.com/devcodecare/site/pkg/email/templates"
	"github.com/devcodecare/site/pkg/sanitizer"
)

const subjectPrefix = "Contact Form"

// headerValue keeps visitor text safe for a single header line.
var headerValue = sanitizer.Compose(sanitizer.NormalizeUnicode, sanitizer.RemoveControlChars, sanitizer.SingleLine)

// EmailSubject builds the notification subject line.
func EmailSubject(s Submission) string {
	if label := s.ServiceLabel(); label != "" {
		return headerValue(subjectPrefix + " [" + label + "]: " + s.Subject)
	}
	return headerValue(subjectPrefix + ": " + s.Subject)
}

// NotificationHTML renders the HTML notification body. Every visitor supplied
// value is escaped and message newlines become <br>.
func NotificationHTML(s Submission) templ.Component {
	return notificationEmail(s)
}

// NotificationText renders the plain text notification body. Values are not
// escaped.
func NotificationText(s Submission) string {
	var b strings.Builder
	b.WriteString("New Contact Form Submission\n\n")
	b.WriteString("From: " + s.Name + "\n")
	b.WriteString("Email: " + s.Email + "\n")
	b.WriteString("Subject: " + s.Subject + "\n")
	if label := s.ServiceLabel(); label != "" {
		b.WriteString("Service: " + label + "\n")
	}
	b.WriteString("\nMessage:\n")
	b.WriteString(normalizeNewlines(s.Message))
	b.WriteString("\n")
	return b.String()
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

func messageLines(message string) []string {
	return strings.Split(normalizeNewlines(message), "\n")
}

// BuildMessage renders s into an email addressed to "to" with the visitor as
// Reply-To.
func BuildMessage(ctx context.Context, s Submission, to string) (email.Message, error) {
	html, err := templates.Render(ctx, NotificationHTML(s))
	if err != nil {
		return email.Message{}, err
	}
	return email.Message{
		To:      to,
		ReplyTo: s.Email,
		Subject: EmailSubject(s),
		HTML:    html,
		Text:    NotificationText(s),
		Tag:     "contact-form",
	}, nil
}
