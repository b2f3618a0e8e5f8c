package options

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/agenda"
)

// TaskOptions are the editable fields of a task.
type TaskOptions struct {
	Title       string
	Description string
	Deadline    string
	Client      string
	Priority    string
	Category    string
	Recurrence  string
}

func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Longer description of the task.")
	cmd.Flags().StringVar(&o.Deadline, "deadline", "",
		`Due date, example: --deadline="2024-03-01". Empty keeps the task in the inbox.`)
	cmd.Flags().StringVarP(&o.Client, "client", "c", "",
		"Client id that owns the task.")
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "1",
		"Priority: 1 (low), 2 (medium) or 3 (high).")
	cmd.Flags().StringVar(&o.Category, "category", agenda.DefaultCategory,
		"One of: "+strings.Join(agenda.Categories(), ", ")+".")
	cmd.Flags().StringVarP(&o.Recurrence, "recurrence", "r", string(agenda.RecurrenceNone),
		"Repeat: none, daily, weekly, monthly or annually.")

	_ = cmd.RegisterFlagCompletionFunc("category", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return agenda.Categories(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("recurrence", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		var rs []string
		for _, r := range agenda.AllRecurrences() {
			rs = append(rs, string(r))
		}
		return rs, cobra.ShellCompDirectiveNoFileComp
	})
}

// Changed lists the task fields set explicitly on the command line, as
// field names understood by store.UpdateTaskField.
func (o *TaskOptions) Changed(cmd *cobra.Command) map[string]string {
	out := map[string]string{}
	flags := map[string]string{
		"description": o.Description,
		"deadline":    o.Deadline,
		"client":      o.Client,
		"priority":    o.Priority,
		"category":    o.Category,
		"recurrence":  o.Recurrence,
	}
	for name, value := range flags {
		if cmd.Flags().Changed(name) {
			out[name] = value
		}
	}
	return out
}

// Task builds the payload for a new task. The deadline accepts the same
// forms as --on.
func (o *TaskOptions) Task(now time.Time) (agenda.Task, error) {
	p, err := agenda.ParsePriority(o.Priority)
	if err != nil {
		return agenda.Task{}, err
	}
	r, err := agenda.ParseRecurrence(o.Recurrence)
	if err != nil {
		return agenda.Task{}, err
	}
	deadline, err := NormalizeDate(strings.TrimSpace(o.Deadline), now)
	if err != nil {
		return agenda.Task{}, err
	}
	return agenda.Task{
		Title:       o.Title,
		Description: o.Description,
		Deadline:    deadline,
		ClientID:    o.Client,
		Priority:    p,
		Category:    o.Category,
		Recurrence:  r,
	}, nil
}
