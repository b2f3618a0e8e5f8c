package calendar

import (
	"testing"
	"time"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := Parse(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return d
}

func TestMonthCellsWholeWeeks(t *testing.T) {
	for year := 2023; year <= 2025; year++ {
		for m := time.January; m <= time.December; m++ {
			anchor := time.Date(year, m, 15, 13, 0, 0, 0, time.Local)
			cells := MonthCells(anchor)
			if len(cells)%7 != 0 {
				t.Fatalf("%s: expected multiple of 7, got %d", anchor.Format("2006-01"), len(cells))
			}
			first := date(t, cells[0].Date)
			if first.Weekday() != time.Sunday {
				t.Fatalf("%s: expected Sunday start, got %s", anchor.Format("2006-01"), first.Weekday())
			}
			for i := 1; i < len(cells); i++ {
				prev, cur := date(t, cells[i-1].Date), date(t, cells[i].Date)
				if !cur.Equal(prev.AddDate(0, 0, 1)) {
					t.Fatalf("%s: cells %d and %d are not consecutive: %s, %s", anchor.Format("2006-01"), i-1, i, cells[i-1].Date, cells[i].Date)
				}
			}
		}
	}
}

func TestMonthCellsCurrentPeriod(t *testing.T) {
	// March 2024 starts on a Friday and ends on a Sunday.
	cells := MonthCells(date(t, "2024-03-10"))
	if len(cells) != 42 {
		t.Fatalf("expected 42 cells, got %d", len(cells))
	}
	if cells[0].Date != "2024-02-25" || cells[0].IsCurrentPeriod {
		t.Fatalf("unexpected first cell %+v", cells[0])
	}
	if cells[4].Date != "2024-02-29" {
		t.Fatalf("expected leap day before March, got %s", cells[4].Date)
	}
	if cells[5].Date != "2024-03-01" || !cells[5].IsCurrentPeriod {
		t.Fatalf("unexpected first day of month %+v", cells[5])
	}
	last := cells[len(cells)-1]
	if last.Date != "2024-04-06" || last.IsCurrentPeriod {
		t.Fatalf("unexpected last cell %+v", last)
	}
	current := 0
	for _, c := range cells {
		if c.IsCurrentPeriod {
			current++
		}
	}
	if current != 31 {
		t.Fatalf("expected 31 current days, got %d", current)
	}
}

func TestMonthCellsNoPadding(t *testing.T) {
	// February 2015 starts on Sunday and ends on Saturday.
	cells := MonthCells(date(t, "2015-02-01"))
	if len(cells) != 28 {
		t.Fatalf("expected 28 cells, got %d", len(cells))
	}
	for _, c := range cells {
		if !c.IsCurrentPeriod {
			t.Fatalf("unexpected padding cell %+v", c)
		}
	}
}

func TestMonthCellsYearBoundaries(t *testing.T) {
	dec := MonthCells(date(t, "2024-12-25"))
	if dec[0].Date != "2024-12-01" {
		t.Fatalf("expected December 2024 to start on its first Sunday, got %s", dec[0].Date)
	}
	tail := dec[len(dec)-4:]
	want := []string{"2025-01-01", "2025-01-02", "2025-01-03", "2025-01-04"}
	for i, c := range tail {
		if c.Date != want[i] || c.IsCurrentPeriod {
			t.Fatalf("unexpected December trailing cell %d: %+v", i, c)
		}
	}

	jan := MonthCells(date(t, "2025-01-10"))
	head := jan[:3]
	want = []string{"2024-12-29", "2024-12-30", "2024-12-31"}
	for i, c := range head {
		if c.Date != want[i] || c.IsCurrentPeriod {
			t.Fatalf("unexpected January leading cell %d: %+v", i, c)
		}
	}
	if jan[3].Date != "2025-01-01" || !jan[3].IsCurrentPeriod {
		t.Fatalf("unexpected cell %+v", jan[3])
	}
}

func TestMonthCellsTodayUnique(t *testing.T) {
	now := time.Date(2024, time.March, 12, 23, 30, 0, 0, time.Local)
	count := 0
	for _, c := range MonthCells(now) {
		if IsToday(c.Date, now) {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one today cell, got %d", count)
	}
}

func TestWeekCells(t *testing.T) {
	for _, anchor := range []string{"2024-03-10", "2024-03-13", "2024-03-16", "2024-12-31", "2025-01-01"} {
		cells := WeekCells(date(t, anchor))
		if len(cells) != 7 {
			t.Fatalf("%s: expected 7 cells, got %d", anchor, len(cells))
		}
		if d := date(t, cells[0].Date); d.Weekday() != time.Sunday {
			t.Fatalf("%s: expected Sunday start, got %s", anchor, d.Weekday())
		}
		found := false
		for _, c := range cells {
			found = found || c.Date == anchor
		}
		if !found {
			t.Fatalf("%s: week does not contain its anchor", anchor)
		}
	}
	cells := WeekCells(date(t, "2025-01-01"))
	if cells[0].Date != "2024-12-29" || cells[6].Date != "2025-01-04" {
		t.Fatalf("unexpected week across new year: %s..%s", cells[0].Date, cells[6].Date)
	}
}

func TestDayCells(t *testing.T) {
	anchor := time.Date(2024, time.March, 1, 23, 59, 0, 0, time.FixedZone("BRT", -3*3600))
	cells := DayCells(anchor)
	if len(cells) != 1 || cells[0].Date != "2024-03-01" {
		t.Fatalf("expected the anchor's own date, got %+v", cells)
	}
}

func TestNavigate(t *testing.T) {
	tests := []struct {
		anchor string
		g      Granularity
		step   int
		want   string
	}{
		{"2024-03-01", Day, -1, "2024-02-29"},
		{"2024-12-31", Day, 1, "2025-01-01"},
		{"2024-12-28", Week, 1, "2025-01-04"},
		{"2024-01-03", Week, -1, "2023-12-27"},
		{"2024-01-31", Month, 1, "2024-02-29"},
		{"2023-01-31", Month, 1, "2023-02-28"},
		{"2024-12-15", Month, 1, "2025-01-15"},
		{"2024-01-15", Month, -1, "2023-12-15"},
		{"2024-03-31", Month, -13, "2023-02-28"},
	}
	for _, tt := range tests {
		got := Format(Navigate(date(t, tt.anchor), tt.g, tt.step))
		if got != tt.want {
			t.Fatalf("Navigate(%s, %s, %d): expected %s, got %s", tt.anchor, tt.g, tt.step, tt.want, got)
		}
	}
}

func TestParseGranularity(t *testing.T) {
	for in, want := range map[string]Granularity{"monthly": Month, "Week": Week, "d": Day} {
		got, err := ParseGranularity(in)
		if err != nil || got != want {
			t.Fatalf("ParseGranularity(%q): expected %s, got %s (%v)", in, want, got, err)
		}
	}
	if _, err := ParseGranularity("year"); err == nil {
		t.Fatalf("expected error for year")
	}
}

func TestYears(t *testing.T) {
	years := Years(MonthCells(date(t, "2024-12-01")))
	if len(years) != 2 || years[0] != 2024 || years[1] != 2025 {
		t.Fatalf("expected [2024 2025], got %v", years)
	}
}

func TestTitle(t *testing.T) {
	if got := Title(date(t, "2024-03-13"), Week); got != "Mar 10 - Mar 16, 2024" {
		t.Fatalf("unexpected week title %q", got)
	}
	if got := Title(date(t, "2024-03-13"), Month); got != "March 2024" {
		t.Fatalf("unexpected month title %q", got)
	}
}
