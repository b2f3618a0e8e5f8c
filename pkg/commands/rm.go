package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/runner/rm"
)

func addRemove(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:     "rm",
		Aliases: []string{"delete"},
		Short:   "Delete a task, or a client with all of its tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addRemoveKind(cmd, e, rm.TaskKind, e.taskCompletions)
	addRemoveKind(cmd, e, rm.ClientKind, e.clientCompletions)

	topLevel.AddCommand(cmd)
}

func addRemoveKind(topLevel *cobra.Command, e *env, kind rm.Kind, complete func(*cobra.Command) []string) {
	short := "Delete a task"
	if kind == rm.ClientKind {
		short = "Delete a client and every task it owns"
	}

	cmd := &cobra.Command{
		Use:   string(kind) + " <id>",
		Short: short,
		Example: `
agenda rm ` + string(kind) + ` <id>
agenda rm ` + string(kind) + ` <id> --yes
`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return complete(cmd), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := e.session(cmd)
			if err != nil {
				return err
			}
			r := rm.Remove{Kind: kind, ID: args[0], Store: s.Store, Out: cmd.OutOrStdout()}
			return r.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
