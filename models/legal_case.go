package models

import "time"

// Case status constants
const (
	CaseStatusActive    = "ACTIVE"
	CaseStatusSuspended = "SUSPENDED"
	CaseStatusJudged    = "JUDGED"
	CaseStatusArchived  = "ARCHIVED"
)

// LegalCase represents a tracked judicial matter. Cases are stored inside the
// serialized case record set.
//
// Lawyer holds a denormalized copy of the responsible lawyer's name taken at
// last save. It must equal the Name of the Lawyer whose ID is LawyerID; the
// lawyer service rewrites it on every rename.
type LegalCase struct {
	ID            string    `json:"id"`
	ProcessNumber string    `json:"process_number"`
	Author        string    `json:"author"` // plaintiff / requester
	LawyerID      string    `json:"lawyer_id"`
	Lawyer        string    `json:"lawyer"`
	DateAdded     time.Time `json:"date_added"` // set once on creation
	Status        string    `json:"status"`
	Description   string    `json:"description,omitempty"`
	PDFData       string    `json:"pdf_data,omitempty"`    // data-URI encoded document
	PDFName       string    `json:"pdf_name,omitempty"`    // original filename
	StorageKey    string    `json:"storage_key,omitempty"` // offloaded raw copy, if any
}

// HasDocument reports whether an attachment is present on the case.
func (c *LegalCase) HasDocument() bool {
	return c.PDFData != "" && c.PDFName != ""
}

// IsValidCaseStatus checks if the status is valid
func IsValidCaseStatus(status string) bool {
	switch status {
	case CaseStatusActive, CaseStatusSuspended, CaseStatusJudged, CaseStatusArchived:
		return true
	}
	return false
}
