package printers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/agenda/pkg/agenda"
	"tableflip.dev/agenda/pkg/calendar"
	"tableflip.dev/agenda/pkg/index"
)

// JSON writes v indented, to color.Output when w is nil.
func JSON(w io.Writer, v interface{}) error {
	if w == nil {
		w = color.Output
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("printers: encode json: %w", err)
	}
	return nil
}

// CellTasks is a calendar cell with the tasks due on it.
type CellTasks struct {
	calendar.Cell
	Today bool          `json:"today,omitempty"`
	Tasks []agenda.Task `json:"tasks"`
}

// Period is the machine-readable form of a calendar view.
type Period struct {
	Title       string               `json:"title"`
	Granularity calendar.Granularity `json:"granularity"`
	Cells       []CellTasks          `json:"cells"`
}

// NewPeriod places tasks on cells. today is a normalized date.
func NewPeriod(title string, g calendar.Granularity, cells []calendar.Cell, tasks []agenda.Task, today string) Period {
	p := Period{Title: title, Granularity: g, Cells: make([]CellTasks, 0, len(cells))}
	for _, c := range cells {
		p.Cells = append(p.Cells, CellTasks{
			Cell:  c,
			Today: c.Date == today,
			Tasks: index.TasksOnDate(tasks, c.Date),
		})
	}
	return p
}
