package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/move"
)

func addMove(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:     "move <task id> <date>",
		Aliases: []string{"mv", "drop"},
		Short:   "Move a task to another day",
		Example: `
agenda move task2 2024-03-05
agenda move task2 3/5
`,
		Args: cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return e.taskCompletions(cmd), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := e.session(cmd)
			if err != nil {
				return err
			}
			date, err := options.NormalizeDate(args[1], s.Now())
			if err != nil {
				return err
			}
			m := move.Move{ID: args[0], Date: date, Store: s.Store, Out: cmd.OutOrStdout()}
			return m.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
