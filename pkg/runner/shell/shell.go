// Package shell keeps one agenda session open and reads commands line by
// line, so navigation, sorting and edits carry over between commands.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/agenda/pkg/calendar"
	"tableflip.dev/agenda/pkg/index"
	"tableflip.dev/agenda/pkg/session"
)

const help = `Navigation: next, prev, today, view month|week|day
Ordering:   sort <field>  (again on the same field to reverse)
Anything else runs as an agenda command, e.g. "add task Call back -c cli1".
Type exit to leave.`

// Shell reads lines from In until exit or end of input. Lines that are not
// navigation are handed to Exec as arguments.
type Shell struct {
	In      *bufio.Reader
	Out     io.Writer
	Session *session.Session
	Exec    func(ctx context.Context, args []string) error
	Prompt  string
}

func (n *Shell) Do(ctx context.Context) error {
	if n.In == nil || n.Session == nil || n.Exec == nil {
		return errors.New("can not start shell, missing input, session or executor")
	}
	if n.Out == nil {
		n.Out = color.Output
	}
	out := n.Out
	prompt := n.Prompt
	if prompt == "" {
		prompt = "agenda> "
	}

	_, _ = fmt.Fprintln(out, help)
	if err := n.render(ctx); err != nil {
		_, _ = fmt.Fprintln(out, "error:", err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		_, _ = color.New(color.Bold).Fprint(out, prompt)
		line, err := n.In.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("shell: read: %w", err)
		}
		eof := errors.Is(err, io.EOF)
		if eof && strings.TrimSpace(line) == "" {
			_, _ = fmt.Fprintln(out)
			return nil
		}

		args, serr := Split(line)
		switch {
		case serr != nil:
			_, _ = fmt.Fprintln(out, "error:", serr)
		case len(args) == 0:
		case args[0] == "exit" || args[0] == "quit":
			return nil
		default:
			if err := n.dispatch(ctx, args); err != nil {
				_, _ = fmt.Fprintln(out, "error:", err)
			}
		}
		if eof {
			return nil
		}
	}
}

func (n *Shell) dispatch(ctx context.Context, args []string) error {
	s := n.Session
	switch args[0] {
	case "next":
		s.Next()
		return n.render(ctx)
	case "prev", "previous":
		s.Prev()
		return n.render(ctx)
	case "today":
		s.GoToday()
		return n.render(ctx)
	case "view":
		if len(args) != 2 {
			return errors.New("usage: view month|week|day")
		}
		g, err := calendar.ParseGranularity(args[1])
		if err != nil {
			return err
		}
		s.SetView(g)
		return n.render(ctx)
	case "sort":
		if len(args) != 2 {
			return errors.New("usage: sort <field>")
		}
		key, err := index.ParseSortKey(args[1])
		if err != nil {
			return err
		}
		s.SortBy(key)
		return n.Exec(ctx, []string{"list"})
	case "help", "?":
		_, _ = fmt.Fprintln(n.Out, help)
		return n.Exec(ctx, []string{"help"})
	}
	return n.Exec(ctx, args)
}

// render shows the current calendar view.
func (n *Shell) render(ctx context.Context) error {
	return n.Exec(ctx, []string{string(n.Session.View)})
}
