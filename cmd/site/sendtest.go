package main

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/devcodecare/site/modules/contact"
	"github.com/devcodecare/site/pkg/logger"
)

var (
	sendTestTo      string
	sendTestName    string
	sendTestEmail   string
	sendTestSubject string
	sendTestService string
	sendTestMessage string
)

var errSendTestFailed = errors.New("test notification failed")

var sendTestCmd = &cobra.Command{
	Use:   "send-test",
	Short: "Send a sample contact notification",
	Long: `Build a sample contact form submission, validate it and send it through
the configured email strategy. Useful for checking SMTP, Resend or Postmark
settings before going live.

Example:
  site send-test --to ops@example.com
  site send-test --service other --message "Testing the mailer"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if sendTestTo != "" {
			cfg.Contact.Recipient = sendTestTo
		}

		log := newLogger(cfg)
		metrics, err := contact.NewMetrics(nil)
		if err != nil {
			return err
		}
		dispatcher := newDispatcher(cfg, log, metrics)

		raw := map[string]any{
			"name":    sendTestName,
			"email":   sendTestEmail,
			"subject": sendTestSubject,
			"message": sendTestMessage,
		}
		if sendTestService != "" {
			raw["service"] = sendTestService
			if contact.Service(sendTestService) == contact.ServiceOther {
				raw["otherService"] = "Mailer check"
			}
		}

		sub, fieldErrs := contact.Validate(raw)
		if len(fieldErrs) > 0 {
			return fmt.Errorf("invalid sample submission: %s", formatFieldErrors(fieldErrs))
		}

		out := dispatcher.Send(cmd.Context(), sub)
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "recipient: %s\n", cfg.Contact.Recipient)
		fmt.Fprintf(w, "strategy:  %s\n", out.Strategy)
		fmt.Fprintf(w, "success:   %t\n", out.Success)
		fmt.Fprintf(w, "message:   %s\n", out.Message)

		if !out.Success {
			log.Error("test notification failed", logger.Strategy(out.Strategy), logger.Error(out.Err))
			return errSendTestFailed
		}
		return nil
	},
}

func formatFieldErrors(errs contact.FieldErrors) string {
	parts := make([]string, 0, len(errs))
	for _, f := range slices.Sorted(maps.Keys(errs)) {
		parts = append(parts, f+": "+errs[f])
	}
	return strings.Join(parts, "; ")
}

func init() {
	sendTestCmd.Flags().StringVar(&sendTestTo, "to", "", "recipient address (default is CONTACT_EMAIL)")
	sendTestCmd.Flags().StringVar(&sendTestName, "name", "Site Check", "sender name")
	sendTestCmd.Flags().StringVar(&sendTestEmail, "email", "check@example.com", "sender email used as reply-to")
	sendTestCmd.Flags().StringVar(&sendTestSubject, "subject", "Contact form test", "subject line")
	sendTestCmd.Flags().StringVar(&sendTestService, "service", "web", "service to select (web, mobile, support, cloud, other)")
	sendTestCmd.Flags().StringVar(&sendTestMessage, "message", "This is a test message sent from the site CLI.", "message body")
}
