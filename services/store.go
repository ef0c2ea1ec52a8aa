package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"duartecontrol/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecordStore persists the three record collections (cases, lawyers,
// deadlines), each as a single JSON document in the record_sets table. Every
// mutation reads the whole collection, rewrites it and persists it back; the
// expected collection sizes (a single office's caseload) make that cheap.
//
// Update and Delete report whether a matching record was found. A missing id
// is a no-op, never an error.
type RecordStore struct {
	db      *gorm.DB
	latency time.Duration
}

// NewRecordStore creates a record store. A non-zero latency is applied before
// every operation to emulate a remote backend.
func NewRecordStore(db *gorm.DB, latency time.Duration) *RecordStore {
	return &RecordStore{db: db, latency: latency}
}

// wait applies the configured simulated latency, honoring context
// cancellation. The delay runs before the operation touches storage, so a
// canceled call never leaves a half-applied mutation.
func (s *RecordStore) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// loadSet reads a collection. The second return reports whether the row
// existed at all (needed for lazy seeding). A corrupted document is treated
// as an empty collection.
func loadSet[T any](db *gorm.DB, kind string) ([]T, bool, error) {
	var set models.RecordSet
	if err := db.First(&set, "kind = ?", kind).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return []T{}, false, nil
		}
		return nil, false, fmt.Errorf("failed to read %s record set: %w", kind, err)
	}

	var items []T
	if err := json.Unmarshal([]byte(set.Data), &items); err != nil {
		log.Printf("[WARNING] Corrupted %s record set, treating as empty: %v", kind, err)
		return []T{}, true, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, true, nil
}

// saveSet writes a whole collection back, inserting the row on first write.
func saveSet[T any](db *gorm.DB, kind string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to serialize %s record set: %w", kind, err)
	}

	set := models.RecordSet{Kind: kind, Data: string(data)}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kind"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&set).Error
	if err != nil {
		return fmt.Errorf("failed to persist %s record set: %w", kind, err)
	}
	return nil
}

// --- Cases ---

// ListCases returns the full case collection, newest first.
func (s *RecordStore) ListCases(ctx context.Context) ([]models.LegalCase, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	cases, _, err := loadSet[models.LegalCase](s.db, models.RecordKindCases)
	return cases, err
}

// CreateCase prepends the new case and returns the updated collection.
func (s *RecordStore) CreateCase(ctx context.Context, newCase models.LegalCase) ([]models.LegalCase, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	cases, _, err := loadSet[models.LegalCase](s.db, models.RecordKindCases)
	if err != nil {
		return nil, err
	}
	cases = append([]models.LegalCase{newCase}, cases...)
	if err := saveSet(s.db, models.RecordKindCases, cases); err != nil {
		return nil, err
	}
	return cases, nil
}

// UpdateCase replaces the case with a matching id in place. The bool reports
// whether a match was found; a missing id leaves the collection untouched.
func (s *RecordStore) UpdateCase(ctx context.Context, updated models.LegalCase) ([]models.LegalCase, bool, error) {
	if err := s.wait(ctx); err != nil {
		return nil, false, err
	}
	cases, _, err := loadSet[models.LegalCase](s.db, models.RecordKindCases)
	if err != nil {
		return nil, false, err
	}
	for i := range cases {
		if cases[i].ID == updated.ID {
			cases[i] = updated
			if err := saveSet(s.db, models.RecordKindCases, cases); err != nil {
				return nil, false, err
			}
			return cases, true, nil
		}
	}
	return cases, false, nil
}

// SaveCases overwrites the whole case collection. Used by the rename
// propagation, which rewrites many cases in one pass.
func (s *RecordStore) SaveCases(ctx context.Context, cases []models.LegalCase) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	return saveSet(s.db, models.RecordKindCases, cases)
}

// DeleteCase removes the case with a matching id, if present.
func (s *RecordStore) DeleteCase(ctx context.Context, id string) ([]models.LegalCase, bool, error) {
	if err := s.wait(ctx); err != nil {
		return nil, false, err
	}
	cases, _, err := loadSet[models.LegalCase](s.db, models.RecordKindCases)
	if err != nil {
		return nil, false, err
	}
	remaining := make([]models.LegalCase, 0, len(cases))
	found := false
	for _, c := range cases {
		if c.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, c)
	}
	if found {
		if err := saveSet(s.db, models.RecordKindCases, remaining); err != nil {
			return nil, false, err
		}
	}
	return remaining, found, nil
}

// --- Lawyers ---

// seedLawyers returns the two example lawyers written on the very first read
// of an empty installation, so the register form always has someone to assign.
func seedLawyers() []models.Lawyer {
	return []models.Lawyer{
		{ID: "l1", Name: "Dra. Ana Costa", OAB: "12345/SP"},
		{ID: "l2", Name: "Dr. Roberto Santos", OAB: "67890/RJ"},
	}
}

// ListLawyers returns the lawyer collection, seeding it with the two fixed
// example lawyers the first time it is read.
func (s *RecordStore) ListLawyers(ctx context.Context) ([]models.Lawyer, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	lawyers, exists, err := loadSet[models.Lawyer](s.db, models.RecordKindLawyers)
	if err != nil {
		return nil, err
	}
	if !exists {
		lawyers = seedLawyers()
		if err := saveSet(s.db, models.RecordKindLawyers, lawyers); err != nil {
			return nil, err
		}
	}
	return lawyers, nil
}

// CreateLawyer prepends the new lawyer and returns the updated collection.
func (s *RecordStore) CreateLawyer(ctx context.Context, lawyer models.Lawyer) ([]models.Lawyer, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	lawyers, exists, err := loadSet[models.Lawyer](s.db, models.RecordKindLawyers)
	if err != nil {
		return nil, err
	}
	if !exists {
		lawyers = seedLawyers()
	}
	lawyers = append([]models.Lawyer{lawyer}, lawyers...)
	if err := saveSet(s.db, models.RecordKindLawyers, lawyers); err != nil {
		return nil, err
	}
	return lawyers, nil
}

// UpdateLawyer replaces the lawyer with a matching id in place.
func (s *RecordStore) UpdateLawyer(ctx context.Context, updated models.Lawyer) ([]models.Lawyer, bool, error) {
	if err := s.wait(ctx); err != nil {
		return nil, false, err
	}
	lawyers, _, err := loadSet[models.Lawyer](s.db, models.RecordKindLawyers)
	if err != nil {
		return nil, false, err
	}
	for i := range lawyers {
		if lawyers[i].ID == updated.ID {
			lawyers[i] = updated
			if err := saveSet(s.db, models.RecordKindLawyers, lawyers); err != nil {
				return nil, false, err
			}
			return lawyers, true, nil
		}
	}
	return lawyers, false, nil
}

// DeleteLawyer removes the lawyer with a matching id, if present.
func (s *RecordStore) DeleteLawyer(ctx context.Context, id string) ([]models.Lawyer, bool, error) {
	if err := s.wait(ctx); err != nil {
		return nil, false, err
	}
	lawyers, _, err := loadSet[models.Lawyer](s.db, models.RecordKindLawyers)
	if err != nil {
		return nil, false, err
	}
	remaining := make([]models.Lawyer, 0, len(lawyers))
	found := false
	for _, l := range lawyers {
		if l.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, l)
	}
	if found {
		if err := saveSet(s.db, models.RecordKindLawyers, remaining); err != nil {
			return nil, false, err
		}
	}
	return remaining, found, nil
}

// --- Deadlines ---

// ListDeadlines returns the full deadline collection.
func (s *RecordStore) ListDeadlines(ctx context.Context) ([]models.Deadline, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	deadlines, _, err := loadSet[models.Deadline](s.db, models.RecordKindDeadlines)
	return deadlines, err
}

// CreateDeadline prepends the new deadline and returns the updated collection.
func (s *RecordStore) CreateDeadline(ctx context.Context, deadline models.Deadline) ([]models.Deadline, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	deadlines, _, err := loadSet[models.Deadline](s.db, models.RecordKindDeadlines)
	if err != nil {
		return nil, err
	}
	deadlines = append([]models.Deadline{deadline}, deadlines...)
	if err := saveSet(s.db, models.RecordKindDeadlines, deadlines); err != nil {
		return nil, err
	}
	return deadlines, nil
}

// UpdateDeadline replaces the deadline with a matching id in place.
func (s *RecordStore) UpdateDeadline(ctx context.Context, updated models.Deadline) ([]models.Deadline, bool, error) {
	if err := s.wait(ctx); err != nil {
		return nil, false, err
	}
	deadlines, _, err := loadSet[models.Deadline](s.db, models.RecordKindDeadlines)
	if err != nil {
		return nil, false, err
	}
	for i := range deadlines {
		if deadlines[i].ID == updated.ID {
			deadlines[i] = updated
			if err := saveSet(s.db, models.RecordKindDeadlines, deadlines); err != nil {
				return nil, false, err
			}
			return deadlines, true, nil
		}
	}
	return deadlines, false, nil
}

// DeleteDeadline removes the deadline with a matching id, if present.
func (s *RecordStore) DeleteDeadline(ctx context.Context, id string) ([]models.Deadline, bool, error) {
	if err := s.wait(ctx); err != nil {
		return nil, false, err
	}
	deadlines, _, err := loadSet[models.Deadline](s.db, models.RecordKindDeadlines)
	if err != nil {
		return nil, false, err
	}
	remaining := make([]models.Deadline, 0, len(deadlines))
	found := false
	for _, d := range deadlines {
		if d.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, d)
	}
	if found {
		if err := saveSet(s.db, models.RecordKindDeadlines, remaining); err != nil {
			return nil, false, err
		}
	}
	return remaining, found, nil
}
