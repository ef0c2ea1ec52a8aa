package models

import "time"

// Record set kind constants
const (
	RecordKindCases     = "cases"
	RecordKindLawyers   = "lawyers"
	RecordKindDeadlines = "deadlines"
)

// RecordSet holds one whole collection serialized as a JSON array, one row
// per kind. The store always reads and rewrites the full document; with a
// single office's caseload that is cheaper than it sounds.
type RecordSet struct {
	Kind      string    `gorm:"primarykey;type:varchar(32)" json:"kind"`
	Data      string    `gorm:"type:text;not null" json:"-"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for RecordSet model
func (RecordSet) TableName() string {
	return "record_sets"
}
