package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitkit/internal/constants"
)

// Today returns today's date string (YYYY-MM-DD) in the system timezone.
// Completion identity is the calendar day, never the full timestamp.
func Today() string {
	return DateOf(time.Now())
}

// DateOf formats a time as a date string (YYYY-MM-DD).
func DateOf(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDate parses a date string in the standard format (YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", dateStr)
	}
	return t, nil
}

// ValidDate checks if the string matches the standard date format.
func ValidDate(dateStr string) bool {
	_, err := time.Parse(constants.DateFormat, dateStr)
	return err == nil
}

// ParseMonth parses a month string (YYYY-MM) into its year and month.
func ParseMonth(monthStr string) (int, time.Month, error) {
	t, err := time.Parse(constants.MonthFormat, monthStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month format: %s (expected YYYY-MM)", monthStr)
	}
	return t.Year(), t.Month(), nil
}
