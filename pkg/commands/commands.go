package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/agenda/pkg/commands/options"
)

func New() *cobra.Command {
	return newRoot(&env{})
}

func newRoot(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agenda",
		Short: base.Wrap80("Client agenda on the command line: calendar views, a sortable task list, a client registry and a quick-capture inbox."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&e.yes, "yes", "y", false,
		"Delete without asking for confirmation.")
	options.AddShowIDArgs(cmd, &e.ids)

	addCommands(cmd, e)
	return cmd
}

func addCommands(topLevel *cobra.Command, e *env) {
	for _, g := range granularities {
		addView(topLevel, e, g)
	}
	addList(topLevel, e)
	addInbox(topLevel, e)
	addClients(topLevel, e)
	addHolidays(topLevel, e)
	addAdd(topLevel, e)
	addQuick(topLevel, e)
	addEdit(topLevel, e)
	addSet(topLevel, e)
	addMove(topLevel, e)
	addRemove(topLevel, e)
	addShell(topLevel, e)
	addInfo(topLevel, e)
	addVersion(topLevel)
	addCompletions(topLevel)
}
