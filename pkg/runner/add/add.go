// Package add creates tasks and clients.
package add

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/agenda/pkg/agenda"
	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/store"
)

// Filler completes a task payload the command line left partial.
type Filler interface {
	FillTask(t *agenda.Task, clients []agenda.Client, askDeadline bool) error
}

// Task creates Task. When Filler is set it is asked for missing fields
// first.
type Task struct {
	Task   agenda.Task
	Filler Filler
	// AskDeadline lets the Filler prompt for a deadline.
	AskDeadline bool

	Store  *store.Store
	Now    time.Time
	ShowID bool
	Out    io.Writer
}

func (n *Task) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add, no store")
	}
	if n.Filler != nil {
		if err := n.Filler.FillTask(&n.Task, n.Store.Clients(), n.AskDeadline); err != nil {
			return err
		}
	}
	t, err := n.Store.CreateTask(n.Task)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out, Now: n.Now, ShowID: n.ShowID}
	pp.Message("Added %s", t.ID)
	pp.Task(t, n.Store.Clients())
	return nil
}

// Quick captures a task into the inbox: no deadline, low priority and the
// default category. ClientID defaults to the first client.
type Quick struct {
	Title    string
	ClientID string

	Store *store.Store
	Now   time.Time
	Out   io.Writer
}

func (n *Quick) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add, no store")
	}
	client := n.ClientID
	if client == "" {
		clients := n.Store.Clients()
		if len(clients) == 0 {
			return errors.New("can not capture a task without any client, add one first")
		}
		client = clients[0].ID
	}
	t, err := n.Store.CreateTask(agenda.Task{
		Title:      n.Title,
		ClientID:   client,
		Priority:   agenda.Low,
		Category:   agenda.DefaultCategory,
		Recurrence: agenda.RecurrenceNone,
	})
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out, Now: n.Now}
	pp.Message("Captured %s in the inbox", t.ID)
	return nil
}

// Client registers a client.
type Client struct {
	Name  string
	Store *store.Store
	Out   io.Writer
}

func (n *Client) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add, no store")
	}
	c, err := n.Store.CreateClient(agenda.Client{Name: n.Name})
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Message("Added client %s (%s)", c.Name, c.ID)
	return nil
}
