package models

// Lawyer is a staff attorney who may be responsible for zero or more cases.
// Lawyers live inside the serialized lawyer record set, not in their own
// table, so there are no GORM tags here.
type Lawyer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	OAB  string `json:"oab,omitempty"` // bar registration number, free text
}
