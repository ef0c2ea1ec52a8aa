package services

import (
	"fmt"
	"log"
	"strings"

	"duartecontrol/config"

	"github.com/resend/resend-go/v2"
)

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	HTMLBody string
	TextBody string
}

// SendEmail sends an email using the Resend API. In test mode the message is
// logged to the console instead of sent.
func SendEmail(cfg *config.Config, email *Email) error {
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}
	if email.HTMLBody == "" && email.TextBody == "" {
		return fmt.Errorf("email has no body")
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
	}
	if email.HTMLBody != "" {
		params.Html = email.HTMLBody
	}
	if email.TextBody != "" {
		params.Text = email.TextBody
	}

	if _, err := client.Emails.Send(params); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func logEmailToConsole(email *Email) {
	log.Printf("--- EMAIL (test mode, not sent) ---")
	log.Printf("To: %s", strings.Join(email.To, ", "))
	log.Printf("Subject: %s", email.Subject)
	if email.TextBody != "" {
		log.Printf("Body:\n%s", email.TextBody)
	}
	log.Printf("--- END EMAIL ---")
}

// BuildDeadlineDigestEmail formats the daily reminder digest of urgent and
// overdue deadlines for the office mailbox.
func BuildDeadlineDigestEmail(to string, urgent, overdue []AgendaEntry) *Email {
	var text strings.Builder

	if len(overdue) > 0 {
		text.WriteString("Prazos vencidos:\n")
		for _, e := range overdue {
			writeDigestLine(&text, e)
		}
		text.WriteString("\n")
	}
	if len(urgent) > 0 {
		text.WriteString(fmt.Sprintf("Prazos nos próximos %d dias:\n", UrgencyWindowDays))
		for _, e := range urgent {
			writeDigestLine(&text, e)
		}
	}

	return &Email{
		To:       []string{to},
		Subject:  fmt.Sprintf("DuarteControl: %d prazo(s) exigindo atenção", len(urgent)+len(overdue)),
		TextBody: text.String(),
	}
}

func writeDigestLine(b *strings.Builder, e AgendaEntry) {
	line := fmt.Sprintf("- %s | %s | prioridade %s", e.Date, e.Title, e.Priority)
	if e.ProcessNumber != "" {
		line += " | processo " + e.ProcessNumber
	}
	b.WriteString(line + "\n")
}
