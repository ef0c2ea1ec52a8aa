package services

import (
	"context"
	"strings"
	"time"

	"duartecontrol/models"

	"github.com/google/uuid"
)

// CaseService coordinates case mutations against the record store: required
// field validation, resolution of the cached lawyer name, and the
// creation-only DateAdded stamp.
type CaseService struct {
	store *RecordStore
}

// NewCaseService creates a new case service instance
func NewCaseService(store *RecordStore) *CaseService {
	return &CaseService{store: store}
}

// CaseInput carries the user-editable case fields.
type CaseInput struct {
	ProcessNumber string `json:"process_number"`
	Author        string `json:"author"`
	LawyerID      string `json:"lawyer_id"`
	Status        string `json:"status"`
	Description   string `json:"description"`
}

func (in *CaseInput) validate() error {
	if strings.TrimSpace(in.ProcessNumber) == "" {
		return ErrProcessNumberRequired
	}
	if strings.TrimSpace(in.Author) == "" {
		return ErrAuthorRequired
	}
	if strings.TrimSpace(in.LawyerID) == "" {
		return ErrLawyerRequired
	}
	if in.Status != "" && !models.IsValidCaseStatus(in.Status) {
		return ErrInvalidCaseStatus
	}
	return nil
}

// resolveLawyerName maps a lawyer id to its current display name.
func (s *CaseService) resolveLawyerName(ctx context.Context, lawyerID string) (string, error) {
	lawyers, err := s.store.ListLawyers(ctx)
	if err != nil {
		return "", err
	}
	for _, l := range lawyers {
		if l.ID == lawyerID {
			return l.Name, nil
		}
	}
	return "", ErrUnknownLawyer
}

// Create validates the input, resolves the responsible lawyer's name into the
// cached field and stores the new case. Nothing is persisted and no id is
// assigned when validation fails.
func (s *CaseService) Create(ctx context.Context, in CaseInput) (models.LegalCase, error) {
	if err := in.validate(); err != nil {
		return models.LegalCase{}, err
	}

	lawyerName, err := s.resolveLawyerName(ctx, in.LawyerID)
	if err != nil {
		return models.LegalCase{}, err
	}

	status := in.Status
	if status == "" {
		status = models.CaseStatusActive
	}

	newCase := models.LegalCase{
		ID:            uuid.New().String(),
		ProcessNumber: strings.TrimSpace(in.ProcessNumber),
		Author:        strings.TrimSpace(in.Author),
		LawyerID:      in.LawyerID,
		Lawyer:        lawyerName,
		DateAdded:     time.Now().UTC(),
		Status:        status,
		Description:   in.Description,
	}

	if _, err := s.store.CreateCase(ctx, newCase); err != nil {
		return models.LegalCase{}, err
	}
	return newCase, nil
}

// Update rewrites an existing case. DateAdded and any attached document are
// preserved; the cached lawyer name is re-resolved so a changed assignment
// stays consistent. A missing id is reported via the bool, not an error.
func (s *CaseService) Update(ctx context.Context, id string, in CaseInput) (models.LegalCase, bool, error) {
	if err := in.validate(); err != nil {
		return models.LegalCase{}, false, err
	}

	existing, found, err := s.Get(ctx, id)
	if err != nil || !found {
		return models.LegalCase{}, false, err
	}

	lawyerName, err := s.resolveLawyerName(ctx, in.LawyerID)
	if err != nil {
		return models.LegalCase{}, false, err
	}

	status := in.Status
	if status == "" {
		status = existing.Status
	}

	updated := existing
	updated.ProcessNumber = strings.TrimSpace(in.ProcessNumber)
	updated.Author = strings.TrimSpace(in.Author)
	updated.LawyerID = in.LawyerID
	updated.Lawyer = lawyerName
	updated.Status = status
	updated.Description = in.Description

	_, found, err = s.store.UpdateCase(ctx, updated)
	if err != nil {
		return models.LegalCase{}, false, err
	}
	return updated, found, nil
}

// Get returns a single case by id via linear scan.
func (s *CaseService) Get(ctx context.Context, id string) (models.LegalCase, bool, error) {
	cases, err := s.store.ListCases(ctx)
	if err != nil {
		return models.LegalCase{}, false, err
	}
	for _, c := range cases {
		if c.ID == id {
			return c, true, nil
		}
	}
	return models.LegalCase{}, false, nil
}

// List returns the full case collection.
func (s *CaseService) List(ctx context.Context) ([]models.LegalCase, error) {
	return s.store.ListCases(ctx)
}

// Delete removes a case by id. The removed record is returned so the caller
// can release anything stored alongside it, such as an offloaded document.
func (s *CaseService) Delete(ctx context.Context, id string) (models.LegalCase, bool, error) {
	existing, found, err := s.Get(ctx, id)
	if err != nil || !found {
		return models.LegalCase{}, false, err
	}

	_, found, err = s.store.DeleteCase(ctx, id)
	if err != nil {
		return models.LegalCase{}, false, err
	}
	return existing, found, nil
}

// AttachDocument stores an already-encoded PDF data-URI, its original
// filename and the storage key of the offloaded raw copy on the case. The
// previously stored key is returned so the caller can discard the old copy.
func (s *CaseService) AttachDocument(ctx context.Context, id, pdfName, pdfData, storageKey string) (models.LegalCase, string, bool, error) {
	existing, found, err := s.Get(ctx, id)
	if err != nil || !found {
		return models.LegalCase{}, "", false, err
	}

	replaced := existing.StorageKey
	existing.PDFName = pdfName
	existing.PDFData = pdfData
	existing.StorageKey = storageKey

	_, found, err = s.store.UpdateCase(ctx, existing)
	if err != nil {
		return models.LegalCase{}, "", false, err
	}
	return existing, replaced, found, nil
}

// RemoveDocument clears the attachment fields on the case and returns the
// storage key that was attached, if any.
func (s *CaseService) RemoveDocument(ctx context.Context, id string) (models.LegalCase, string, bool, error) {
	return s.AttachDocument(ctx, id, "", "", "")
}
