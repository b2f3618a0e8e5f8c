package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/list"
)

func addList(topLevel *cobra.Command, e *env) {
	so := &options.SortOptions{}
	oo := &base.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "tasks"},
		Short:   "List every task, by deadline unless told otherwise.",
		Example: `
agenda list
agenda list --sort priority --desc
agenda list --sort none
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := e.session(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			l := list.List{
				Session: s,
				Out:     cmd.OutOrStdout(),
			}
			if cmd.Flags().Changed("sort") || cmd.Flags().Changed("desc") {
				sc, err := so.GetSort()
				if err != nil {
					return oo.HandleError(err)
				}
				l.Sort, l.Unsorted = sc, sc == nil
			}
			if oo.JSON {
				l.Output = "json"
			}
			err = l.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddSortArgs(cmd, so)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func addInbox(topLevel *cobra.Command, e *env) {
	oo := &base.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "List tasks without a deadline, newest first.",
		Example: `
agenda inbox
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := e.session(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			i := list.Inbox{Session: s, Out: cmd.OutOrStdout()}
			if oo.JSON {
				i.Output = "json"
			}
			err = i.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addClients(topLevel *cobra.Command, e *env) {
	oo := &base.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "clients [id]",
		Aliases: []string{"client"},
		Short:   "List clients, or one client with its tasks.",
		Example: `
agenda clients
agenda clients cli1
`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return e.clientCompletions(cmd), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := e.session(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			c := list.Clients{Session: s, Out: cmd.OutOrStdout()}
			if len(args) == 1 {
				c.ID = args[0]
			}
			if oo.JSON {
				c.Output = "json"
			}
			err = c.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
