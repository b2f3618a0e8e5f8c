// Package session keeps what the person is currently looking at: the
// anchor date, the calendar granularity and the list ordering, over one
// store and one holiday loader.
package session

import (
	"context"
	"time"

	"tableflip.dev/agenda/pkg/calendar"
	"tableflip.dev/agenda/pkg/holiday"
	"tableflip.dev/agenda/pkg/index"
	"tableflip.dev/agenda/pkg/store"
)

// Session is the view state of one agenda.
type Session struct {
	Store    *store.Store
	Holidays *holiday.Loader
	// Now reports the current time; today is its local calendar date.
	Now func() time.Time

	Anchor time.Time
	View   calendar.Granularity
	Sort   *index.SortConfig
}

// New starts a month view anchored on today, sorted by deadline.
func New(st *store.Store, holidays *holiday.Loader, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	return &Session{
		Store:    st,
		Holidays: holidays,
		Now:      now,
		Anchor:   calendar.Midnight(now()),
		View:     calendar.Month,
		Sort:     index.DefaultSort(),
	}
}

// Today is the normalized current date.
func (s *Session) Today() string {
	return calendar.Format(s.Now())
}

// Cells partitions the current view and overlays whatever holidays have
// resolved. Holidays for every year on screen are requested as a side
// effect.
func (s *Session) Cells(ctx context.Context) []calendar.Cell {
	return s.CellsFor(ctx, s.Anchor, s.View)
}

// CellsFor is Cells for an explicit anchor and granularity.
func (s *Session) CellsFor(ctx context.Context, anchor time.Time, g calendar.Granularity) []calendar.Cell {
	cells := calendar.Cells(anchor, g)
	if s.Holidays == nil {
		return cells
	}
	s.Holidays.Ensure(ctx, calendar.Years(cells)...)
	return holiday.Overlay(cells, s.Holidays.Holidays())
}

// Title labels the current period.
func (s *Session) Title() string {
	return calendar.Title(s.Anchor, s.View)
}

// Next moves one period forward.
func (s *Session) Next() {
	s.Anchor = calendar.Navigate(s.Anchor, s.View, 1)
}

// Prev moves one period back.
func (s *Session) Prev() {
	s.Anchor = calendar.Navigate(s.Anchor, s.View, -1)
}

// GoToday re-anchors on today.
func (s *Session) GoToday() {
	s.Anchor = calendar.Midnight(s.Now())
}

// GoTo re-anchors on date.
func (s *Session) GoTo(date time.Time) {
	s.Anchor = calendar.Midnight(date)
}

// SetView switches granularity and keeps the anchor.
func (s *Session) SetView(g calendar.Granularity) {
	s.View = g
}

// SortBy toggles the list ordering the way clicking a column header does.
func (s *Session) SortBy(key index.SortKey) {
	s.Sort = s.Sort.Toggle(key)
}

// WaitHolidays gives pending holiday fetches up to d to resolve. It never
// fails: whatever has not resolved by then is simply not shown yet.
func (s *Session) WaitHolidays(ctx context.Context, d time.Duration) {
	if s.Holidays == nil || d <= 0 {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()
	_ = s.Holidays.Wait(ctx)
}
