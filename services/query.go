package services

import (
	"sort"
	"strings"
	"time"

	"duartecontrol/models"
)

// SearchMode selects which single case field a search term is matched
// against. There is no combined multi-field search.
type SearchMode string

const (
	SearchModeNumber SearchMode = "number"
	SearchModeAuthor SearchMode = "author"
	SearchModeLawyer SearchMode = "lawyer"
)

// UrgencyWindowDays is the inclusive upcoming window that flags a deadline as
// urgent: today through five days out.
const UrgencyWindowDays = 5

// IsValidSearchMode checks if the mode is valid
func IsValidSearchMode(mode SearchMode) bool {
	switch mode {
	case SearchModeNumber, SearchModeAuthor, SearchModeLawyer:
		return true
	}
	return false
}

// FilterCases returns the cases whose field selected by mode contains term as
// a case-insensitive substring, preserving order. An empty term returns the
// input unchanged.
func FilterCases(cases []models.LegalCase, term string, mode SearchMode) []models.LegalCase {
	if term == "" {
		return cases
	}

	needle := strings.ToLower(term)
	filtered := make([]models.LegalCase, 0, len(cases))
	for _, c := range cases {
		var field string
		switch mode {
		case SearchModeNumber:
			field = c.ProcessNumber
		case SearchModeAuthor:
			field = c.Author
		case SearchModeLawyer:
			field = c.Lawyer
		default:
			return cases
		}
		if strings.Contains(strings.ToLower(field), needle) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// GroupCasesByLawyer partitions cases by the cached lawyer name, preserving
// the original relative order within each group. The key is the display
// string, not the lawyer id, matching how the group views render.
func GroupCasesByLawyer(cases []models.LegalCase) map[string][]models.LegalCase {
	groups := make(map[string][]models.LegalCase)
	for _, c := range cases {
		groups[c.Lawyer] = append(groups[c.Lawyer], c)
	}
	return groups
}

// GroupCasesByAuthor partitions cases by author name, preserving the original
// relative order within each group.
func GroupCasesByAuthor(cases []models.LegalCase) map[string][]models.LegalCase {
	groups := make(map[string][]models.LegalCase)
	for _, c := range cases {
		groups[c.Author] = append(groups[c.Author], c)
	}
	return groups
}

// SortedGroupKeys returns the group names in alphabetical order, for stable
// rendering and export.
func SortedGroupKeys(groups map[string][]models.LegalCase) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DaysUntil returns the whole-day difference between the deadline date and
// today, both truncated to midnight. Negative means past due.
func DaysUntil(dateStr string, today time.Time) (int, error) {
	date, err := ParseDate(dateStr)
	if err != nil {
		return 0, err
	}
	todayMidnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	return int(date.Sub(todayMidnight).Hours() / 24), nil
}

// DeadlineIsUrgent reports whether a deadline falls within the upcoming
// urgency window (today through five days out) and is not completed. Past-due
// deadlines are never urgent; they get their own overdue signal.
func DeadlineIsUrgent(d models.Deadline, today time.Time) bool {
	if d.Completed {
		return false
	}
	days, err := DaysUntil(d.Date, today)
	if err != nil {
		return false
	}
	return days >= 0 && days <= UrgencyWindowDays
}

// DeadlineIsOverdue reports whether a deadline is past due and still
// incomplete.
func DeadlineIsOverdue(d models.Deadline, today time.Time) bool {
	if d.Completed {
		return false
	}
	days, err := DaysUntil(d.Date, today)
	if err != nil {
		return false
	}
	return days < 0
}

// SortDeadlinesByDate returns a copy sorted ascending by date. The sort is
// stable so same-day deadlines keep their stored order. Unparseable dates
// sort last.
func SortDeadlinesByDate(deadlines []models.Deadline) []models.Deadline {
	sorted := make([]models.Deadline, len(deadlines))
	copy(sorted, deadlines)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, erri := ParseDate(sorted[i].Date)
		dj, errj := ParseDate(sorted[j].Date)
		if erri != nil {
			return false
		}
		if errj != nil {
			return true
		}
		return di.Before(dj)
	})
	return sorted
}
