// Package confirm asks a person before something destructive happens.
package confirm

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
)

// Confirmer decides whether a destructive action proceeds. A false result
// with a nil error means the person declined.
type Confirmer interface {
	Confirm(ctx context.Context, title, message string) (bool, error)
}

// Func adapts a function to Confirmer.
type Func func(ctx context.Context, title, message string) (bool, error)

func (f Func) Confirm(ctx context.Context, title, message string) (bool, error) {
	return f(ctx, title, message)
}

var (
	// Always proceeds, for --yes.
	Always Confirmer = Func(func(context.Context, string, string) (bool, error) { return true, nil })
	// Never declines.
	Never Confirmer = Func(func(context.Context, string, string) (bool, error) { return false, nil })
)

// Prompt asks y/N on a terminal.
type Prompt struct {
	In  io.Reader
	Out io.Writer
}

func (p Prompt) Confirm(ctx context.Context, title, message string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	prompt := promptui.Prompt{
		Label:     fmt.Sprintf("%s: %s", title, message),
		IsConfirm: true,
	}
	if p.In != nil {
		prompt.Stdin = io.NopCloser(p.In)
	}
	if p.Out != nil {
		prompt.Stdout = nopWriteCloser{p.Out}
	}

	if _, err := prompt.Run(); err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, fmt.Errorf("confirm: %w", err)
	}
	return true, nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// Line asks y/N on a line-oriented reader. The shell uses it so answers
// are read from the same buffered input as its commands.
type Line struct {
	In  *bufio.Reader
	Out io.Writer
}

func (l Line) Confirm(ctx context.Context, title, message string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, _ = fmt.Fprintf(l.Out, "%s: %s [y/N] ", title, message)
	answer, err := l.In.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("confirm: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
