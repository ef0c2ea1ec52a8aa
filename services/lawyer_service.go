package services

import (
	"context"
	"log"
	"strings"

	"duartecontrol/models"

	"github.com/google/uuid"
)

// LawyerService coordinates lawyer mutations, including the rename
// propagation that keeps the cached lawyer name on cases in sync and the
// referential check that blocks deleting a lawyer still in use.
type LawyerService struct {
	store *RecordStore
}

// NewLawyerService creates a new lawyer service instance
func NewLawyerService(store *RecordStore) *LawyerService {
	return &LawyerService{store: store}
}

// List returns the lawyer collection (seeded on first read).
func (s *LawyerService) List(ctx context.Context) ([]models.Lawyer, error) {
	return s.store.ListLawyers(ctx)
}

// Create validates and stores a new lawyer.
func (s *LawyerService) Create(ctx context.Context, name, oab string) (models.Lawyer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Lawyer{}, ErrLawyerNameRequired
	}

	lawyer := models.Lawyer{
		ID:   uuid.New().String(),
		Name: name,
		OAB:  strings.TrimSpace(oab),
	}
	if _, err := s.store.CreateLawyer(ctx, lawyer); err != nil {
		return models.Lawyer{}, err
	}
	return lawyer, nil
}

// Update rewrites a lawyer and propagates a rename to the cached lawyer name
// on every case that references it. The case collection is persisted only
// when at least one case actually changed.
func (s *LawyerService) Update(ctx context.Context, id, name, oab string) (models.Lawyer, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Lawyer{}, false, ErrLawyerNameRequired
	}

	updated := models.Lawyer{ID: id, Name: name, OAB: strings.TrimSpace(oab)}
	_, found, err := s.store.UpdateLawyer(ctx, updated)
	if err != nil || !found {
		return models.Lawyer{}, found, err
	}

	if err := s.propagateRename(ctx, id, name); err != nil {
		return models.Lawyer{}, false, err
	}
	return updated, true, nil
}

// propagateRename rewrites the cached lawyer name on every case whose
// LawyerID matches. Cases assigned to other lawyers are never touched.
func (s *LawyerService) propagateRename(ctx context.Context, lawyerID, newName string) error {
	cases, err := s.store.ListCases(ctx)
	if err != nil {
		return err
	}

	changed := 0
	for i := range cases {
		if cases[i].LawyerID == lawyerID && cases[i].Lawyer != newName {
			cases[i].Lawyer = newName
			changed++
		}
	}
	if changed == 0 {
		return nil
	}

	if err := s.store.SaveCases(ctx, cases); err != nil {
		return err
	}
	log.Printf("Propagated lawyer rename to %d case(s)", changed)
	return nil
}

// CountCases returns the number of cases referencing a lawyer id.
func (s *LawyerService) CountCases(ctx context.Context, lawyerID string) (int, error) {
	cases, err := s.store.ListCases(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, c := range cases {
		if c.LawyerID == lawyerID {
			count++
		}
	}
	return count, nil
}

// Delete removes a lawyer. Deletion is rejected with ErrLawyerInUse while any
// case references the lawyer, so the denormalized names never dangle.
func (s *LawyerService) Delete(ctx context.Context, id string) (bool, error) {
	count, err := s.CountCases(ctx, id)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, ErrLawyerInUse
	}

	_, found, err := s.store.DeleteLawyer(ctx, id)
	return found, err
}
