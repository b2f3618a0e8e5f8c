// Package view renders the month, week and day calendars.
package view

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/agenda/pkg/calendar"
	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/session"
)

// View prints the period holding the session anchor.
type View struct {
	Session     *session.Session
	Granularity calendar.Granularity
	// On re-anchors the session before printing.
	On *time.Time
	// Wait bounds how long to wait for holidays of the period.
	Wait   time.Duration
	ShowID bool
	Output string
	Out    io.Writer
}

func (v *View) Do(ctx context.Context) error {
	s := v.Session
	if s == nil {
		return errors.New("can not show calendar, no session")
	}
	if v.On != nil {
		s.GoTo(*v.On)
	}
	if v.Granularity != "" {
		s.SetView(v.Granularity)
	}

	_ = s.Cells(ctx)
	s.WaitHolidays(ctx, v.Wait)
	cells := s.Cells(ctx)

	tasks := s.Store.Tasks()
	clients := s.Store.Clients()

	if v.Output == "json" {
		return printers.JSON(v.Out, printers.NewPeriod(s.Title(), s.View, cells, tasks, s.Today()))
	}

	pp := printers.PrettyPrint{Out: v.Out, Now: s.Now(), ShowID: v.ShowID}
	switch s.View {
	case calendar.Day:
		pp.Day(s.Title(), cells[0], tasks, clients)
	case calendar.Week:
		pp.Week(s.Title(), cells, tasks, clients)
	default:
		pp.Month(s.Title(), cells, tasks, clients)
	}
	return nil
}
