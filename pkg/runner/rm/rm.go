// Package rm deletes tasks and clients after confirmation.
package rm

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/store"
)

// Kind selects what is removed.
type Kind string

const (
	TaskKind   Kind = "task"
	ClientKind Kind = "client"
)

// Remove deletes one task, or one client together with its tasks. The
// store's confirmer is asked first; declining is not an error.
type Remove struct {
	Kind Kind
	ID   string

	Store *store.Store
	Out   io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not remove, no store")
	}

	var (
		removed bool
		err     error
	)
	switch n.Kind {
	case ClientKind:
		removed, err = n.Store.DeleteClient(ctx, n.ID)
	default:
		removed, err = n.Store.DeleteTask(ctx, n.ID)
	}
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	if !removed {
		pp.Message("Kept %s %s", n.Kind, n.ID)
		return nil
	}
	pp.Message("Deleted %s %s", n.Kind, n.ID)
	return nil
}
