package services

import "errors"

// Validation and policy errors surfaced to the user as blocking notices.
// Handlers translate them to 4xx responses; nothing here is ever silent.
var (
	ErrProcessNumberRequired = errors.New("process number is required")
	ErrAuthorRequired        = errors.New("author is required")
	ErrLawyerRequired        = errors.New("a responsible lawyer is required")
	ErrUnknownLawyer         = errors.New("referenced lawyer does not exist")
	ErrInvalidCaseStatus     = errors.New("invalid case status")

	ErrLawyerNameRequired = errors.New("lawyer name is required")
	// ErrLawyerInUse blocks deleting a lawyer while cases still reference it.
	// The cases cache only the display name, so the source record must stay.
	ErrLawyerInUse = errors.New("lawyer is referenced by existing cases")

	ErrDeadlineTitleRequired = errors.New("deadline title is required")
	ErrInvalidDeadlineDate   = errors.New("deadline date must be a valid YYYY-MM-DD date")
	ErrInvalidPriority       = errors.New("invalid deadline priority")
	ErrInvalidDeadlineType   = errors.New("invalid deadline type")
	ErrInvalidSubType        = errors.New("invalid manifestation sub-type")
	ErrUnknownCase           = errors.New("referenced case does not exist")
)
