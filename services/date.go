package services

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date form used throughout the deadline agenda
// (ISO 8601, standard for HTML5 date inputs).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string into a midnight UTC time.
func ParseDate(dateStr string) (time.Time, error) {
	parsedTime, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: expected YYYY-MM-DD")
	}
	return parsedTime, nil
}
