package services

import (
	"context"
	"strings"
	"time"

	"duartecontrol/models"

	"github.com/google/uuid"
)

// DeadlineService coordinates deadline CRUD against the record store and
// derives the agenda view (date-sorted, with urgency and overdue flags).
type DeadlineService struct {
	store *RecordStore
}

// NewDeadlineService creates a new deadline service instance
func NewDeadlineService(store *RecordStore) *DeadlineService {
	return &DeadlineService{store: store}
}

// DeadlineInput carries the user-editable deadline fields.
type DeadlineInput struct {
	Title    string `json:"title"`
	Date     string `json:"date"`
	CaseID   string `json:"case_id"`
	Priority string `json:"priority"`
	Type     string `json:"type"`
	SubType  string `json:"sub_type"`
}

func (in *DeadlineInput) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return ErrDeadlineTitleRequired
	}
	if _, err := ParseDate(in.Date); err != nil {
		return ErrInvalidDeadlineDate
	}
	if in.Priority != "" && !models.IsValidDeadlinePriority(in.Priority) {
		return ErrInvalidPriority
	}
	if in.Type != "" && !models.IsValidDeadlineType(in.Type) {
		return ErrInvalidDeadlineType
	}
	if in.Type == models.DeadlineTypeManifestation && in.SubType != "" &&
		!models.IsValidManifestationSubType(in.SubType) {
		return ErrInvalidSubType
	}
	return nil
}

// build assembles a deadline from input, applying defaults, dropping the
// sub-type unless the type is MANIFESTATION, and denormalizing the linked
// case's process number for display.
func (s *DeadlineService) build(ctx context.Context, in DeadlineInput) (models.Deadline, error) {
	priority := in.Priority
	if priority == "" {
		priority = models.DeadlinePriorityMedium
	}
	deadlineType := in.Type
	if deadlineType == "" {
		deadlineType = models.DeadlineTypeGeneral
	}
	subType := ""
	if deadlineType == models.DeadlineTypeManifestation {
		subType = in.SubType
	}

	d := models.Deadline{
		Title:    strings.TrimSpace(in.Title),
		Date:     in.Date,
		Priority: priority,
		Type:     deadlineType,
		SubType:  subType,
	}

	if in.CaseID != "" {
		cases, err := s.store.ListCases(ctx)
		if err != nil {
			return models.Deadline{}, err
		}
		linked := false
		for _, c := range cases {
			if c.ID == in.CaseID {
				d.CaseID = c.ID
				d.ProcessNumber = c.ProcessNumber
				linked = true
				break
			}
		}
		if !linked {
			return models.Deadline{}, ErrUnknownCase
		}
	}
	return d, nil
}

// Create validates and stores a new deadline.
func (s *DeadlineService) Create(ctx context.Context, in DeadlineInput) (models.Deadline, error) {
	if err := in.validate(); err != nil {
		return models.Deadline{}, err
	}

	d, err := s.build(ctx, in)
	if err != nil {
		return models.Deadline{}, err
	}
	d.ID = uuid.New().String()

	if _, err := s.store.CreateDeadline(ctx, d); err != nil {
		return models.Deadline{}, err
	}
	return d, nil
}

// Update rewrites an existing deadline, preserving its completion state.
func (s *DeadlineService) Update(ctx context.Context, id string, in DeadlineInput) (models.Deadline, bool, error) {
	if err := in.validate(); err != nil {
		return models.Deadline{}, false, err
	}

	existing, found, err := s.Get(ctx, id)
	if err != nil || !found {
		return models.Deadline{}, false, err
	}

	d, err := s.build(ctx, in)
	if err != nil {
		return models.Deadline{}, false, err
	}
	d.ID = existing.ID
	d.Completed = existing.Completed

	_, found, err = s.store.UpdateDeadline(ctx, d)
	if err != nil {
		return models.Deadline{}, false, err
	}
	return d, found, nil
}

// ToggleCompleted flips the completion flag, leaving every other field as is.
func (s *DeadlineService) ToggleCompleted(ctx context.Context, id string) (models.Deadline, bool, error) {
	existing, found, err := s.Get(ctx, id)
	if err != nil || !found {
		return models.Deadline{}, false, err
	}

	existing.Completed = !existing.Completed
	_, found, err = s.store.UpdateDeadline(ctx, existing)
	if err != nil {
		return models.Deadline{}, false, err
	}
	return existing, found, nil
}

// Get returns a single deadline by id via linear scan.
func (s *DeadlineService) Get(ctx context.Context, id string) (models.Deadline, bool, error) {
	deadlines, err := s.store.ListDeadlines(ctx)
	if err != nil {
		return models.Deadline{}, false, err
	}
	for _, d := range deadlines {
		if d.ID == id {
			return d, true, nil
		}
	}
	return models.Deadline{}, false, nil
}

// List returns the full deadline collection in stored order.
func (s *DeadlineService) List(ctx context.Context) ([]models.Deadline, error) {
	return s.store.ListDeadlines(ctx)
}

// Delete removes a deadline by id.
func (s *DeadlineService) Delete(ctx context.Context, id string) (bool, error) {
	_, found, err := s.store.DeleteDeadline(ctx, id)
	return found, err
}

// AgendaEntry is a deadline annotated for the agenda view.
type AgendaEntry struct {
	models.Deadline
	Urgent   bool `json:"urgent"`
	Overdue  bool `json:"overdue"`
	DaysLeft int  `json:"days_left"`
}

// Agenda returns all deadlines sorted ascending by date, each annotated with
// its urgency and overdue state relative to today.
func (s *DeadlineService) Agenda(ctx context.Context, today time.Time) ([]AgendaEntry, error) {
	deadlines, err := s.store.ListDeadlines(ctx)
	if err != nil {
		return nil, err
	}

	sorted := SortDeadlinesByDate(deadlines)
	entries := make([]AgendaEntry, 0, len(sorted))
	for _, d := range sorted {
		days, _ := DaysUntil(d.Date, today)
		entries = append(entries, AgendaEntry{
			Deadline: d,
			Urgent:   DeadlineIsUrgent(d, today),
			Overdue:  DeadlineIsOverdue(d, today),
			DaysLeft: days,
		})
	}
	return entries, nil
}
