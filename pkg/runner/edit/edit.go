// Package edit changes existing tasks and clients.
package edit

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/agenda/pkg/agenda"
	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/store"
)

// Task applies Fields to the task with ID in one step. Title, when set,
// is applied too.
type Task struct {
	ID     string
	Title  string
	Fields map[string]string

	Store *store.Store
	Now   time.Time
	Out   io.Writer
}

func (n *Task) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not edit, no store")
	}
	fields := make(map[string]string, len(n.Fields)+1)
	for k, v := range n.Fields {
		fields[k] = v
	}
	if n.Title != "" {
		fields["title"] = n.Title
	}
	if len(fields) == 0 {
		return errors.New("nothing to change, pass at least one field")
	}

	t, err := n.Store.UpdateTaskFields(n.ID, fields)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out, Now: n.Now}
	pp.Message("Updated %s", t.ID)
	pp.Task(t, n.Store.Clients())
	return nil
}

// Set changes a single field, as editing one cell of the list does.
type Set struct {
	ID    string
	Field string
	Value string

	Store *store.Store
	Out   io.Writer
}

func (n *Set) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not edit, no store")
	}
	t, err := n.Store.UpdateTaskField(n.ID, n.Field, n.Value)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Message("Updated %s %s", t.ID, n.Field)
	return nil
}

// Client renames a client.
type Client struct {
	ID   string
	Name string

	Store *store.Store
	Out   io.Writer
}

func (n *Client) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not edit, no store")
	}
	c, err := n.Store.UpdateClient(agenda.Client{ID: n.ID, Name: n.Name})
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Message("Renamed %s to %s", c.ID, c.Name)
	return nil
}
