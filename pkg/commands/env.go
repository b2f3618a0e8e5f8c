package commands

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/config"
	"tableflip.dev/agenda/pkg/confirm"
	"tableflip.dev/agenda/pkg/holiday"
	"tableflip.dev/agenda/pkg/session"
	"tableflip.dev/agenda/pkg/store"
)

// env is what every command of one tree shares. The shell builds a fresh
// tree per line over the same env, so the session outlives each command.
type env struct {
	cfg  *config.Config
	log  *slog.Logger
	sess *session.Session

	yes bool
	ids options.IDOptions

	// alwaysYes survives the per-line reset of --yes inside the shell.
	alwaysYes bool
	// lines is the shell's input; confirmations read from it too.
	lines *bufio.Reader

	in  io.Reader
	out io.Writer
}

// session loads config, seed data and holidays on first use.
func (e *env) session(cmd *cobra.Command) (*session.Session, error) {
	cmd.SilenceUsage = true
	e.in, e.out = cmd.InOrStdin(), cmd.OutOrStdout()
	if e.sess != nil {
		return e.sess, nil
	}

	if e.cfg == nil {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		e.cfg = cfg
	}
	if e.log == nil {
		e.log = e.cfg.Logger(cmd.ErrOrStderr())
	}

	now := time.Now()
	seed := store.DefaultSeed(now)
	if e.cfg.Seed != "" {
		var err error
		if seed, err = store.LoadSeed(e.cfg.Seed, now); err != nil {
			return nil, err
		}
	}
	st := store.New(
		store.WithSeed(seed),
		store.WithLogger(e.log),
		store.WithConfirmer(confirm.Func(e.confirm)),
	)

	var loader *holiday.Loader
	if e.cfg.HolidaysEnabled {
		loader = holiday.NewLoader(holiday.HTTPSource{BaseURL: e.cfg.HolidaysURL}, e.log)
	}
	e.sess = session.New(st, loader, time.Now)
	e.log.Debug("session ready", "clients", len(seed.Clients), "tasks", len(seed.Tasks), "holidays", loader != nil)
	return e.sess, nil
}

func (e *env) confirm(ctx context.Context, title, message string) (bool, error) {
	switch {
	case e.yes || e.alwaysYes:
		return true, nil
	case e.lines != nil:
		return confirm.Line{In: e.lines, Out: e.out}.Confirm(ctx, title, message)
	default:
		return confirm.Prompt{In: e.in, Out: e.out}.Confirm(ctx, title, message)
	}
}

// wait is how long one-shot output waits for holidays.
func (e *env) wait() time.Duration {
	if e.cfg == nil {
		return 0
	}
	return e.cfg.HolidaysWait
}
