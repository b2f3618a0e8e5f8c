// Package calendar partitions months, weeks and days into the dated cells
// every agenda view is drawn from.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"tableflip.dev/agenda/pkg/agenda"
)

// Granularity selects how much time a view covers.
type Granularity string

const (
	Month Granularity = "month"
	Week  Granularity = "week"
	Day   Granularity = "day"
)

// ParseGranularity accepts month, week and day as well as their -ly forms.
func ParseGranularity(raw string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "month", "monthly", "m":
		return Month, nil
	case "week", "weekly", "w":
		return Week, nil
	case "day", "daily", "d":
		return Day, nil
	}
	return "", fmt.Errorf("calendar: unknown granularity %q", raw)
}

// Cell is one displayable date slot.
type Cell struct {
	Date            string `json:"date"`
	IsCurrentPeriod bool   `json:"isCurrentPeriod"`
	Holiday         string `json:"holiday,omitempty"`
}

// Format normalizes t to its YYYY-MM-DD calendar date in t's location.
func Format(t time.Time) string {
	return t.Format(agenda.DateLayout)
}

// Parse reads a YYYY-MM-DD date as midnight UTC.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(agenda.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("calendar: parse date %q: %w", s, err)
	}
	return t, nil
}

// Midnight keeps the calendar date of t and drops the clock and zone, so
// day arithmetic never crosses a DST transition.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsToday compares by normalized string, never by instant.
func IsToday(date string, now time.Time) bool {
	return date == Format(now)
}

// Cells returns the ordered cells for the period containing anchor.
func Cells(anchor time.Time, g Granularity) []Cell {
	switch g {
	case Week:
		return WeekCells(anchor)
	case Day:
		return DayCells(anchor)
	default:
		return MonthCells(anchor)
	}
}

// MonthCells pads the anchor's month with trailing days of the previous
// month and leading days of the next so whole Sunday-first weeks are
// covered.
func MonthCells(anchor time.Time) []Cell {
	a := Midnight(anchor)
	first := time.Date(a.Year(), a.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	lead := int(first.Weekday())
	trail := 6 - int(last.Weekday())

	cells := make([]Cell, 0, lead+last.Day()+trail)
	for i := lead; i > 0; i-- {
		cells = append(cells, Cell{Date: Format(first.AddDate(0, 0, -i))})
	}
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		cells = append(cells, Cell{Date: Format(d), IsCurrentPeriod: true})
	}
	for i := 1; i <= trail; i++ {
		cells = append(cells, Cell{Date: Format(last.AddDate(0, 0, i))})
	}
	return cells
}

// WeekCells returns the seven days of the Sunday-first week holding anchor.
func WeekCells(anchor time.Time) []Cell {
	start := WeekStart(anchor)
	cells := make([]Cell, 7)
	for i := range cells {
		cells[i] = Cell{Date: Format(start.AddDate(0, 0, i)), IsCurrentPeriod: true}
	}
	return cells
}

// DayCells is the anchor alone.
func DayCells(anchor time.Time) []Cell {
	return []Cell{{Date: Format(Midnight(anchor)), IsCurrentPeriod: true}}
}

// WeekStart is the Sunday on or before anchor.
func WeekStart(anchor time.Time) time.Time {
	a := Midnight(anchor)
	return a.AddDate(0, 0, -int(a.Weekday()))
}

// Navigate moves anchor by step periods. Month steps keep the day of the
// month when it exists and otherwise clamp to the target month's last day.
func Navigate(anchor time.Time, g Granularity, step int) time.Time {
	a := Midnight(anchor)
	switch g {
	case Day:
		return a.AddDate(0, 0, step)
	case Week:
		return a.AddDate(0, 0, 7*step)
	default:
		target := time.Date(a.Year(), a.Month()+time.Month(step), 1, 0, 0, 0, 0, time.UTC)
		lastDay := target.AddDate(0, 1, -1).Day()
		return time.Date(target.Year(), target.Month(), min(a.Day(), lastDay), 0, 0, 0, 0, time.UTC)
	}
}

// Years lists every year touched by cells, in order, so overlays can be
// fetched for the adjacent year at December and January boundaries.
func Years(cells []Cell) []int {
	var years []int
	seen := make(map[int]bool)
	for _, c := range cells {
		d, err := Parse(c.Date)
		if err != nil {
			continue
		}
		if !seen[d.Year()] {
			seen[d.Year()] = true
			years = append(years, d.Year())
		}
	}
	return years
}

// Title is a header for the period holding anchor.
func Title(anchor time.Time, g Granularity) string {
	a := Midnight(anchor)
	switch g {
	case Day:
		return a.Format("Monday, January 2, 2006")
	case Week:
		start := WeekStart(a)
		end := start.AddDate(0, 0, 6)
		return fmt.Sprintf("%s - %s", start.Format("Jan 2"), end.Format("Jan 2, 2006"))
	default:
		return a.Format("January 2006")
	}
}
