package commands

import (
	"bufio"
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/runner/shell"
)

func addShell(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Keep one agenda open and type commands into it",
		Long: `Keep one agenda open and type commands into it. Changes last until
the shell exits; next, prev, today, view and sort move around the
calendar and the list.`,
		Example: `
agenda shell
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if e.lines != nil {
				return errors.New("already in a shell")
			}
			s, err := e.session(cmd)
			if err != nil {
				return err
			}
			e.alwaysYes = e.yes
			e.lines = bufio.NewReader(cmd.InOrStdin())
			defer func() { e.lines = nil }()

			out := cmd.OutOrStdout()
			sh := shell.Shell{
				In:      e.lines,
				Out:     out,
				Session: s,
				Exec: func(ctx context.Context, args []string) error {
					line := newRoot(e)
					line.SetArgs(args)
					line.SetIn(e.lines)
					line.SetOut(out)
					line.SetErr(out)
					line.SilenceErrors = true
					line.SilenceUsage = true
					return line.ExecuteContext(ctx)
				},
			}
			return sh.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
