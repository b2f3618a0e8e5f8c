package printers

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gosuri/uitable"

	"tableflip.dev/agenda/pkg/agenda"
	"tableflip.dev/agenda/pkg/holiday"
	"tableflip.dev/agenda/pkg/index"
)

func newTable() *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 48
	tbl.Wrap = true
	return tbl
}

func (pp *PrettyPrint) flush(tbl *uitable.Table) {
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// List prints tasks as a table in the order given. sort, when set, is
// shown in the header.
func (pp *PrettyPrint) List(tasks []agenda.Task, clients []agenda.Client, sort *index.SortConfig) {
	title := "Tasks"
	if sort != nil {
		title = fmt.Sprintf("Tasks by %s (%s)", sort.Key, sort.Direction)
	}
	pp.TitleWithCount(title, len(tasks))
	if len(tasks) == 0 {
		pp.None()
		return
	}

	tbl := newTable()
	tbl.AddRow("ID", "TITLE", "CLIENT", "DEADLINE", "PRIORITY", "CATEGORY", "RECURRENCE")
	for _, t := range tasks {
		deadline := t.Deadline
		if deadline == "" {
			deadline = "-"
		}
		tbl.AddRow(t.ID, t.Title, index.ClientName(clients, t.ClientID), deadline, t.Priority.String(), t.Category, string(t.Recurrence))
	}
	pp.flush(tbl)
}

// Inbox prints tasks without a deadline.
func (pp *PrettyPrint) Inbox(tasks []agenda.Task, clients []agenda.Client) {
	pp.TitleWithCount("Inbox", len(tasks))
	if len(tasks) == 0 {
		pp.None()
		return
	}
	tbl := newTable()
	tbl.AddRow("ID", "TITLE", "CLIENT", "PRIORITY", "CREATED")
	for _, t := range tasks {
		tbl.AddRow(t.ID, t.Title, index.ClientName(clients, t.ClientID), t.Priority.String(), pp.created(t))
	}
	pp.flush(tbl)
}

// created is how long ago t was captured, relative to Now.
func (pp *PrettyPrint) created(t agenda.Task) string {
	now := pp.Now
	if now.IsZero() {
		now = time.Now()
	}
	return humanize.RelTime(t.CreatedAt, now, "ago", "from now")
}

// Client prints one client and the tasks it owns.
func (pp *PrettyPrint) Client(c agenda.Client, tasks []agenda.Task) {
	pp.TitleWithCount(c.Name, len(tasks))
	if len(tasks) == 0 {
		pp.None()
		return
	}
	for _, t := range tasks {
		pp.describe(t, []agenda.Client{c}, "  ")
		deadline := t.Deadline
		if deadline == "" {
			deadline = "inbox"
		}
		_, _ = fmt.Fprintf(pp.out(), "    due %s\n", deadline)
	}
	pp.NewLine()
}

// Clients prints the registry with how many tasks each client owns.
func (pp *PrettyPrint) Clients(clients []agenda.Client, tasks []agenda.Task) {
	pp.Title("Clients")
	if len(clients) == 0 {
		pp.None()
		return
	}
	tbl := newTable()
	tbl.AddRow("ID", "NAME", "TASKS")
	for _, c := range clients {
		tbl.AddRow(c.ID, c.Name, len(index.TasksForClient(tasks, c.ID)))
	}
	pp.flush(tbl)
}

// Holidays prints a year's holidays.
func (pp *PrettyPrint) Holidays(year int, holidays []holiday.Holiday) {
	pp.Title(fmt.Sprintf("Holidays %d", year))
	if len(holidays) == 0 {
		pp.None()
		return
	}
	tbl := newTable()
	for _, h := range holidays {
		tbl.AddRow(h.Date, h.Name)
	}
	pp.flush(tbl)
}
