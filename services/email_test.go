package services

import (
	"testing"

	"duartecontrol/config"
	"duartecontrol/models"

	"github.com/stretchr/testify/assert"
)

func TestSendEmailTestMode(t *testing.T) {
	cfg := &config.Config{EmailTestMode: true}

	err := SendEmail(cfg, &Email{
		To:       []string{"office@example.com"},
		Subject:  "Teste",
		TextBody: "corpo",
	})
	assert.NoError(t, err)
}

func TestSendEmailRequiresAPIKey(t *testing.T) {
	cfg := &config.Config{EmailTestMode: false}

	err := SendEmail(cfg, &Email{To: []string{"x@example.com"}, Subject: "s", TextBody: "b"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "RESEND_API_KEY")
}

func TestBuildDeadlineDigestEmail(t *testing.T) {
	urgent := []AgendaEntry{
		{Deadline: models.Deadline{Title: "Contestação", Date: "2025-03-12", Priority: models.DeadlinePriorityHigh, ProcessNumber: "100"}, Urgent: true},
	}
	overdue := []AgendaEntry{
		{Deadline: models.Deadline{Title: "Recurso", Date: "2025-03-01", Priority: models.DeadlinePriorityMedium}, Overdue: true},
	}

	email := BuildDeadlineDigestEmail("office@example.com", urgent, overdue)

	assert.Equal(t, []string{"office@example.com"}, email.To)
	assert.Contains(t, email.Subject, "2 prazo(s)")
	assert.Contains(t, email.TextBody, "Prazos vencidos:")
	assert.Contains(t, email.TextBody, "Recurso")
	assert.Contains(t, email.TextBody, "Prazos nos próximos 5 dias:")
	assert.Contains(t, email.TextBody, "processo 100")
}

func TestBuildDeadlineDigestEmailUrgentOnly(t *testing.T) {
	urgent := []AgendaEntry{
		{Deadline: models.Deadline{Title: "Audiência", Date: "2025-03-12", Priority: models.DeadlinePriorityLow}, Urgent: true},
	}

	email := BuildDeadlineDigestEmail("office@example.com", urgent, nil)
	assert.Contains(t, email.Subject, "1 prazo(s)")
	assert.NotContains(t, email.TextBody, "Prazos vencidos")
}
