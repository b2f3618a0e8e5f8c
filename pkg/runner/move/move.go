// Package move reschedules a task, the command line form of dragging it
// onto another calendar day.
package move

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/store"
)

// Move sets the deadline of ID to Date. An unknown ID changes nothing,
// like a drop outside any task.
type Move struct {
	ID   string
	Date string

	Store *store.Store
	Out   io.Writer
}

func (n *Move) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not move, no store")
	}
	moved, err := n.Store.ReassignDeadline(n.ID, n.Date)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out}
	if !moved {
		pp.Message("No task %s, nothing moved", n.ID)
		return nil
	}
	pp.Message("Moved %s to %s", n.ID, n.Date)
	return nil
}
