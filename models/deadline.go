package models

// Deadline priority constants
const (
	DeadlinePriorityLow    = "LOW"
	DeadlinePriorityMedium = "MEDIUM"
	DeadlinePriorityHigh   = "HIGH"
)

// Deadline type constants
const (
	DeadlineTypeHearing       = "HEARING"
	DeadlineTypeManifestation = "MANIFESTATION"
	DeadlineTypeEdict         = "EDICT"
	DeadlineTypeGeneral       = "GENERAL"
)

// Manifestation sub-type constants. A sub-type is only meaningful when the
// deadline type is MANIFESTATION.
const (
	ManifestationContestation        = "CONTESTATION"
	ManifestationReply               = "REPLY_IMPUGNATION"
	ManifestationAppeal              = "APPEAL"
	ManifestationInterlocutoryAppeal = "INTERLOCUTORY_APPEAL"
	ManifestationClarificationMotion = "CLARIFICATION_MOTION"
	ManifestationClosingArguments    = "CLOSING_ARGUMENTS"
	ManifestationGeneral             = "GENERAL_MANIFESTATION"
)

// Deadline is a dated task or event, optionally linked to a case.
// ProcessNumber is a denormalized copy of the linked case's docket number for
// display. Date is a calendar date in YYYY-MM-DD form; the agenda logic never
// needs a time of day.
type Deadline struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Date          string `json:"date"`
	CaseID        string `json:"case_id,omitempty"`
	ProcessNumber string `json:"process_number,omitempty"`
	Priority      string `json:"priority"`
	Type          string `json:"type"`
	SubType       string `json:"sub_type,omitempty"`
	Completed     bool   `json:"completed"`
}

// IsValidDeadlinePriority checks if the priority is valid
func IsValidDeadlinePriority(priority string) bool {
	switch priority {
	case DeadlinePriorityLow, DeadlinePriorityMedium, DeadlinePriorityHigh:
		return true
	}
	return false
}

// IsValidDeadlineType checks if the type is valid
func IsValidDeadlineType(deadlineType string) bool {
	switch deadlineType {
	case DeadlineTypeHearing, DeadlineTypeManifestation, DeadlineTypeEdict, DeadlineTypeGeneral:
		return true
	}
	return false
}

// IsValidManifestationSubType checks if the sub-type is valid
func IsValidManifestationSubType(subType string) bool {
	switch subType {
	case ManifestationContestation, ManifestationReply, ManifestationAppeal,
		ManifestationInterlocutoryAppeal, ManifestationClarificationMotion,
		ManifestationClosingArguments, ManifestationGeneral:
		return true
	}
	return false
}
