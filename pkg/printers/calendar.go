package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/agenda/pkg/agenda"
	"tableflip.dev/agenda/pkg/calendar"
	"tableflip.dev/agenda/pkg/index"
)

const weekHeader = " Su  Mo  Tu  We  Th  Fr  Sa"

// monthPreview is how many tasks a month cell lists before "+N more".
const monthPreview = 1

// Month prints a Sunday-first grid for cells, then each in-month day that
// has a holiday or tasks. A day lists its first task and how many more
// are due.
func (pp *PrettyPrint) Month(title string, cells []calendar.Cell, tasks []agenda.Task, clients []agenda.Client) {
	w := pp.out()
	today := calendar.Format(pp.Now)

	pp.Title(title)
	_, _ = color.New(color.Faint).Fprintln(w, weekHeader)

	outside := color.New(color.Faint)
	inside := color.New()
	busy := color.New(color.Bold)
	now := color.New(color.Bold, color.Underline, color.FgCyan)

	for i, c := range cells {
		d, err := calendar.Parse(c.Date)
		if err != nil {
			continue
		}
		n := len(index.TasksOnDate(tasks, c.Date))

		mark := " "
		switch {
		case c.Holiday != "":
			mark = "!"
		case n > 0:
			mark = "•"
		}

		printer := inside
		switch {
		case c.Date == today:
			printer = now
		case !c.IsCurrentPeriod:
			printer = outside
		case n > 0:
			printer = busy
		}
		_, _ = printer.Fprintf(w, " %2d", d.Day())
		_, _ = fmt.Fprint(w, mark)
		if i%7 == 6 {
			_, _ = fmt.Fprintln(w)
		}
	}
	pp.NewLine()

	for _, c := range cells {
		if !c.IsCurrentPeriod {
			continue
		}
		onDay := index.TasksOnDate(tasks, c.Date)
		if len(onDay) == 0 && c.Holiday == "" {
			continue
		}
		d, _ := calendar.Parse(c.Date)
		label := d.Format("Mon 02")
		if c.Date == today {
			label = now.Sprint(label)
		}
		_, _ = fmt.Fprintf(w, "  %s", label)

		lead := "  "
		if c.Holiday != "" {
			_, _ = fmt.Fprintf(w, "%s%s\n", lead, color.New(color.FgMagenta).Sprintf("%s %s", holidayMark, c.Holiday))
			lead = strings.Repeat(" ", len("  Mon 02  "))
		}
		shown, remaining := index.Preview(onDay, monthPreview)
		for _, t := range shown {
			_, _ = fmt.Fprintf(w, "%s%s", lead, pp.taskLine(t, clients))
			if remaining > 0 {
				_, _ = color.New(color.Faint, color.Italic).Fprintf(w, " +%d more", remaining)
			}
			_, _ = fmt.Fprintln(w)
		}
	}
	pp.NewLine()
}

// Week prints each day of cells with every task due on it.
func (pp *PrettyPrint) Week(title string, cells []calendar.Cell, tasks []agenda.Task, clients []agenda.Client) {
	pp.Title(title)
	for _, c := range cells {
		pp.day(c, tasks, clients, "Mon 02 Jan")
	}
}

// Day prints the single cell of a day view in full.
func (pp *PrettyPrint) Day(title string, cell calendar.Cell, tasks []agenda.Task, clients []agenda.Client) {
	pp.Title(title)
	if cell.Holiday != "" {
		_, _ = color.New(color.FgMagenta).Fprintf(pp.out(), "%s %s\n", holidayMark, cell.Holiday)
	}
	onDay := index.TasksOnDate(tasks, cell.Date)
	if len(onDay) == 0 {
		pp.None()
		return
	}
	for _, t := range onDay {
		pp.describe(t, clients, "")
	}
	pp.NewLine()
}

func (pp *PrettyPrint) day(c calendar.Cell, tasks []agenda.Task, clients []agenda.Client, layout string) {
	w := pp.out()
	d, err := calendar.Parse(c.Date)
	if err != nil {
		return
	}
	header := color.New(color.Bold)
	if c.Date == calendar.Format(pp.Now) {
		header = color.New(color.Bold, color.Underline, color.FgCyan)
	}
	_, _ = header.Fprint(w, d.Format(layout))
	if c.Holiday != "" {
		_, _ = color.New(color.FgMagenta).Fprintf(w, "  %s %s", holidayMark, c.Holiday)
	}
	_, _ = fmt.Fprintln(w)

	onDay := index.TasksOnDate(tasks, c.Date)
	if len(onDay) == 0 {
		pp.None()
		return
	}
	for _, t := range onDay {
		pp.describe(t, clients, "  ")
	}
	pp.NewLine()
}
