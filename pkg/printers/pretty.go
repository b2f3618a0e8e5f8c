// Package printers renders agenda views on a terminal.
package printers

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/agenda/pkg/agenda"
	"tableflip.dev/agenda/pkg/index"
)

// PrettyPrint writes colored views to Out.
type PrettyPrint struct {
	Out io.Writer
	// Now decides which cell is today.
	Now time.Time
	// ShowID prefixes tasks with their id.
	ShowID bool
}

const (
	bullet      = "●"
	holidayMark = "★"
	wrapWidth   = 64
)

var priorityColors = map[string]color.Attribute{
	"green":  color.FgGreen,
	"yellow": color.FgYellow,
	"red":    color.FgRed,
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " task")
	default:
		_, _ = c.Fprintln(pp.out(), " tasks")
	}
}

// None marks an empty section.
func (pp *PrettyPrint) None() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.out(), "  none\n\n")
}

// Message prints a plain status line.
func (pp *PrettyPrint) Message(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(pp.out(), format+"\n", args...)
}

func priorityDot(p agenda.Priority) string {
	attr, ok := priorityColors[p.Detail().Color]
	if !ok {
		return bullet
	}
	return color.New(attr).Sprint(bullet)
}

// taskLine is "● Title (Client)" with the id when ShowID is set.
func (pp *PrettyPrint) taskLine(t agenda.Task, clients []agenda.Client) string {
	faint := color.New(color.Faint)
	b := strings.Builder{}
	b.WriteString(priorityDot(t.Priority))
	b.WriteString(" ")
	if pp.ShowID {
		b.WriteString(color.New(color.FgHiYellow, color.Faint).Sprint(t.ID))
		b.WriteString(" ")
	}
	b.WriteString(t.Title)
	b.WriteString(" ")
	b.WriteString(faint.Sprintf("(%s)", index.ClientName(clients, t.ClientID)))
	return b.String()
}

// describe prints the long form of a task, indented.
func (pp *PrettyPrint) describe(t agenda.Task, clients []agenda.Client, indent string) {
	w := pp.out()
	faint := color.New(color.Faint)
	_, _ = fmt.Fprintf(w, "%s%s\n", indent, pp.taskLine(t, clients))

	meta := []string{t.Priority.String()}
	if t.Category != "" {
		meta = append(meta, t.Category)
	}
	if t.Recurrence != "" && t.Recurrence != agenda.RecurrenceNone {
		meta = append(meta, "repeats "+string(t.Recurrence))
	}
	_, _ = faint.Fprintf(w, "%s  %s\n", indent, strings.Join(meta, " · "))

	if desc := strings.TrimSpace(t.Description); desc != "" {
		for _, line := range strings.Split(wordwrap.String(desc, wrapWidth), "\n") {
			_, _ = fmt.Fprintf(w, "%s  %s\n", indent, line)
		}
	}
}

// Task prints one task in full.
func (pp *PrettyPrint) Task(t agenda.Task, clients []agenda.Client) {
	pp.describe(t, clients, "")
	faint := color.New(color.Faint)
	deadline := t.Deadline
	if deadline == "" {
		deadline = "inbox"
	}
	_, _ = faint.Fprintf(pp.out(), "  id %s · due %s · created %s\n", t.ID, deadline, t.CreatedAt.Local().Format(time.RFC3339))
}
