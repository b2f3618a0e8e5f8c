// Package info reports where settings came from and what the agenda holds.
package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/agenda/pkg/config"
	"tableflip.dev/agenda/pkg/index"
	"tableflip.dev/agenda/pkg/store"
)

type Info struct {
	Config *config.Config
	Store  *store.Store
	Out    io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	w := n.Out
	if w == nil {
		w = color.Output
	}

	if override := os.Getenv("AGENDA_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(w, "AGENDA_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(w, "AGENDA_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = config.Load()
		if err != nil {
			return err
		}
	}

	file := n.Config.File
	if file == "" {
		file = "none, using defaults"
	}
	_, _ = fmt.Fprintln(w, "Config file:", file)
	seed := n.Config.Seed
	if seed == "" {
		seed = "built-in demo data"
	}
	_, _ = fmt.Fprintln(w, "Seed:", seed)
	if n.Config.HolidaysEnabled {
		_, _ = fmt.Fprintf(w, "Holidays: %s (wait %s)\n", n.Config.HolidaysURL, n.Config.HolidaysWait)
	} else {
		_, _ = fmt.Fprintln(w, "Holidays: disabled")
	}
	_, _ = fmt.Fprintln(w, "Log level:", n.Config.LogLevel)

	if n.Store == nil {
		return errors.New("failed to create the store")
	}
	tasks := n.Store.Tasks()
	_, _ = fmt.Fprintf(w, "Clients: %d\n", len(n.Store.Clients()))
	_, _ = fmt.Fprintf(w, "Tasks: %d (%d in the inbox)\n", len(tasks), len(index.TasksWithoutDeadline(tasks)))
	return nil
}
