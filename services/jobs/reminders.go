package jobs

import (
	"context"
	"log"
	"time"

	"duartecontrol/config"
	"duartecontrol/services"
)

// SendDeadlineReminders mails the office a digest of urgent and overdue
// deadlines. Runs once a day from the server loop.
func SendDeadlineReminders(deadlineService *services.DeadlineService, cfg *config.Config) {
	log.Println("Starting deadline reminder job...")

	if cfg.OfficeEmail == "" {
		log.Println("OFFICE_EMAIL not set, skipping deadline reminders")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	entries, err := deadlineService.Agenda(ctx, time.Now().UTC())
	if err != nil {
		log.Printf("Error fetching agenda for reminders: %v", err)
		return
	}

	var urgent, overdue []services.AgendaEntry
	for _, e := range entries {
		switch {
		case e.Overdue:
			overdue = append(overdue, e)
		case e.Urgent:
			urgent = append(urgent, e)
		}
	}

	if len(urgent) == 0 && len(overdue) == 0 {
		log.Println("No urgent or overdue deadlines, no reminder sent")
		return
	}

	email := services.BuildDeadlineDigestEmail(cfg.OfficeEmail, urgent, overdue)
	if err := services.SendEmail(cfg, email); err != nil {
		log.Printf("Failed to send deadline reminder digest: %v", err)
		return
	}

	log.Printf("Sent deadline reminder digest (%d urgent, %d overdue)", len(urgent), len(overdue))
}
