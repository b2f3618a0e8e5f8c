// Package list prints the task list, the inbox and the client registry.
package list

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/agenda/pkg/index"
	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/session"
	"tableflip.dev/agenda/pkg/store"
)

// List prints every task in the session ordering, or in Sort when set.
type List struct {
	Session *session.Session
	Sort    *index.SortConfig
	// Unsorted keeps insertion order and ignores Sort.
	Unsorted bool
	Output   string
	Out      io.Writer
}

func (n *List) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not list, no session")
	}
	sc := n.Session.Sort
	switch {
	case n.Unsorted:
		sc = nil
	case n.Sort != nil:
		sc = n.Sort
		n.Session.Sort = n.Sort
	}

	tasks := index.SortTasks(n.Session.Store.Tasks(), sc)
	if n.Output == "json" {
		return printers.JSON(n.Out, tasks)
	}
	pp := printers.PrettyPrint{Out: n.Out, Now: n.Session.Now()}
	pp.List(tasks, n.Session.Store.Clients(), sc)
	return nil
}

// Inbox prints the tasks without a deadline, newest first.
type Inbox struct {
	Session *session.Session
	Output  string
	Out     io.Writer
}

func (n *Inbox) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not show inbox, no session")
	}
	tasks := index.TasksWithoutDeadline(n.Session.Store.Tasks())
	if n.Output == "json" {
		return printers.JSON(n.Out, tasks)
	}
	pp := printers.PrettyPrint{Out: n.Out, Now: n.Session.Now()}
	pp.Inbox(tasks, n.Session.Store.Clients())
	return nil
}

// Clients prints the registry, or one client and its tasks when ID is set.
type Clients struct {
	Session *session.Session
	ID      string
	Output  string
	Out     io.Writer
}

func (n *Clients) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not list clients, no session")
	}
	st := n.Session.Store
	pp := printers.PrettyPrint{Out: n.Out, Now: n.Session.Now(), ShowID: true}

	if n.ID == "" {
		if n.Output == "json" {
			return printers.JSON(n.Out, st.Clients())
		}
		pp.Clients(st.Clients(), st.Tasks())
		return nil
	}

	c, ok := st.Client(n.ID)
	if !ok {
		return fmt.Errorf("%w: %s", store.ErrClientNotFound, n.ID)
	}
	owned := index.SortTasks(index.TasksForClient(st.Tasks(), c.ID), index.DefaultSort())
	if n.Output == "json" {
		return printers.JSON(n.Out, struct {
			ID    string      `json:"id"`
			Name  string      `json:"name"`
			Tasks interface{} `json:"tasks"`
		}{c.ID, c.Name, owned})
	}
	pp.Client(c, owned)
	return nil
}
