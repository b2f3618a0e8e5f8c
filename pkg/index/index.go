// Package index answers read-only questions over a task collection:
// which tasks fall on a date, which sit in the inbox, and in what order a
// list should show them. No function here mutates its input.
package index

import (
	"sort"

	"tableflip.dev/agenda/pkg/agenda"
)

// UnknownClient is shown for a task whose client no longer exists.
const UnknownClient = "Unknown client"

// TasksOnDate returns the tasks due on date in their original order.
func TasksOnDate(tasks []agenda.Task, date string) []agenda.Task {
	out := make([]agenda.Task, 0)
	for _, t := range tasks {
		if t.Deadline == date {
			out = append(out, t)
		}
	}
	return out
}

// Preview keeps the first limit tasks and reports how many were left out.
func Preview(tasks []agenda.Task, limit int) ([]agenda.Task, int) {
	if limit < 0 {
		limit = 0
	}
	if len(tasks) <= limit {
		return append([]agenda.Task(nil), tasks...), 0
	}
	return append([]agenda.Task(nil), tasks[:limit]...), len(tasks) - limit
}

// TasksWithoutDeadline returns the inbox, newest first.
func TasksWithoutDeadline(tasks []agenda.Task) []agenda.Task {
	out := make([]agenda.Task, 0)
	for _, t := range tasks {
		if !t.HasDeadline() {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// TasksForClient returns the tasks owned by clientID in their original order.
func TasksForClient(tasks []agenda.Task, clientID string) []agenda.Task {
	out := make([]agenda.Task, 0)
	for _, t := range tasks {
		if t.ClientID == clientID {
			out = append(out, t)
		}
	}
	return out
}

// ClientName resolves id, falling back to UnknownClient.
func ClientName(clients []agenda.Client, id string) string {
	for _, c := range clients {
		if c.ID == id {
			return c.Name
		}
	}
	return UnknownClient
}
