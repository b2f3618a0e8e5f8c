package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"tableflip.dev/agenda/pkg/calendar"
	"tableflip.dev/agenda/pkg/holiday"
	"tableflip.dev/agenda/pkg/index"
	"tableflip.dev/agenda/pkg/store"
)

var now = time.Date(2024, time.December, 30, 18, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestNewDefaults(t *testing.T) {
	s := New(store.New(), nil, clock)
	if s.View != calendar.Month {
		t.Fatalf("expected month view, got %s", s.View)
	}
	if s.Sort == nil || s.Sort.Key != index.ByDeadline || s.Sort.Direction != index.Ascending {
		t.Fatalf("expected deadline ascending, got %+v", s.Sort)
	}
	if s.Today() != "2024-12-30" || calendar.Format(s.Anchor) != "2024-12-30" {
		t.Fatalf("unexpected today %s / anchor %s", s.Today(), calendar.Format(s.Anchor))
	}
}

func TestCellsOverlayHolidaysAcrossYears(t *testing.T) {
	source := holiday.SourceFunc(func(_ context.Context, year int) ([]holiday.Holiday, error) {
		switch year {
		case 2024:
			return []holiday.Holiday{{Date: "2024-12-25", Name: "Natal"}}, nil
		case 2025:
			return []holiday.Holiday{{Date: "2025-01-01", Name: "Confraternização mundial"}}, nil
		}
		return nil, errors.New("unexpected year")
	})
	s := New(store.New(), holiday.NewLoader(source, quiet), clock)
	s.SetView(calendar.Week)

	ctx := context.Background()
	_ = s.Cells(ctx)
	s.WaitHolidays(ctx, time.Second)
	cells := s.Cells(ctx)

	// Dec 29 2024 - Jan 4 2025.
	if cells[0].Date != "2024-12-29" || cells[3].Date != "2025-01-01" {
		t.Fatalf("unexpected week %+v", cells)
	}
	if cells[3].Holiday != "Confraternização mundial" {
		t.Fatalf("expected new year holiday, got %+v", cells[3])
	}

	s.SetView(calendar.Month)
	for _, c := range s.Cells(ctx) {
		if c.Date == "2024-12-25" && c.Holiday != "Natal" {
			t.Fatalf("expected christmas holiday, got %+v", c)
		}
	}
}

func TestCellsWithFailingSource(t *testing.T) {
	source := holiday.SourceFunc(func(context.Context, int) ([]holiday.Holiday, error) {
		return nil, errors.New("connection refused")
	})
	s := New(store.New(), holiday.NewLoader(source, quiet), clock)

	ctx := context.Background()
	_ = s.Cells(ctx)
	s.WaitHolidays(ctx, time.Second)
	for _, c := range s.Cells(ctx) {
		if c.Holiday != "" {
			t.Fatalf("expected no holidays, got %+v", c)
		}
	}
}

func TestNavigation(t *testing.T) {
	s := New(store.New(), nil, clock)

	s.Next()
	if got := calendar.Format(s.Anchor); got != "2025-01-30" {
		t.Fatalf("expected 2025-01-30, got %s", got)
	}
	s.Next()
	if got := calendar.Format(s.Anchor); got != "2025-02-28" {
		t.Fatalf("expected clamp to 2025-02-28, got %s", got)
	}

	s.SetView(calendar.Day)
	s.Prev()
	if got := calendar.Format(s.Anchor); got != "2025-02-27" {
		t.Fatalf("expected 2025-02-27, got %s", got)
	}

	s.GoToday()
	s.SetView(calendar.Week)
	s.Next()
	if got := calendar.Format(s.Anchor); got != "2025-01-06" {
		t.Fatalf("expected 2025-01-06, got %s", got)
	}
	if s.Title() != "Jan 5 - Jan 11, 2025" {
		t.Fatalf("unexpected title %q", s.Title())
	}

	s.GoTo(time.Date(2024, time.March, 1, 23, 59, 0, 0, time.UTC))
	if got := calendar.Format(s.Anchor); got != "2024-03-01" {
		t.Fatalf("expected 2024-03-01, got %s", got)
	}
}

func TestSortBy(t *testing.T) {
	s := New(store.New(), nil, clock)
	s.SortBy(index.ByDeadline)
	if s.Sort.Direction != index.Descending {
		t.Fatalf("expected deadline to flip to descending, got %+v", s.Sort)
	}
	s.SortBy(index.ByTitle)
	if s.Sort.Key != index.ByTitle || s.Sort.Direction != index.Ascending {
		t.Fatalf("expected title ascending, got %+v", s.Sort)
	}
}

func TestWaitHolidaysWithoutLoader(t *testing.T) {
	s := New(store.New(), nil, clock)
	s.WaitHolidays(context.Background(), time.Second)
	if cells := s.Cells(context.Background()); len(cells)%7 != 0 {
		t.Fatalf("expected whole weeks, got %d cells", len(cells))
	}
}
