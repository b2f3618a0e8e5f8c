package agenda

import (
	"fmt"
	"strings"
)

// Recurrence records how often a task repeats.
type Recurrence string

const (
	RecurrenceNone     Recurrence = "none"
	RecurrenceDaily    Recurrence = "daily"
	RecurrenceWeekly   Recurrence = "weekly"
	RecurrenceMonthly  Recurrence = "monthly"
	RecurrenceAnnually Recurrence = "annually"
)

// AllRecurrences lists the supported values in display order.
func AllRecurrences() []Recurrence {
	return []Recurrence{
		RecurrenceNone,
		RecurrenceDaily,
		RecurrenceWeekly,
		RecurrenceMonthly,
		RecurrenceAnnually,
	}
}

// Valid is true for the supported values. Empty means none.
func (r Recurrence) Valid() bool {
	if r == "" {
		return true
	}
	for _, candidate := range AllRecurrences() {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseRecurrence converts a string, defaulting empty input to none.
func ParseRecurrence(raw string) (Recurrence, error) {
	r := Recurrence(strings.ToLower(strings.TrimSpace(raw)))
	if r == "" {
		return RecurrenceNone, nil
	}
	if !r.Valid() {
		return RecurrenceNone, fmt.Errorf("%w: recurrence %q", ErrInvalid, raw)
	}
	return r, nil
}

// DefaultCategory is used by quick capture.
const DefaultCategory = "Other"

// Categories returns the suggested task categories.
func Categories() []string {
	return []string{
		"Card",
		"Video Editing",
		"Ad Management",
		"Report",
		"Event",
		"Birthday",
		"Commemorative Dates",
		DefaultCategory,
	}
}
