package commands

import (
	"github.com/spf13/cobra"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(agenda completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(agenda completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(cmd.OutOrStdout())
		},
	}

	topLevel.AddCommand(cmd)
}

func (e *env) clientCompletions(cmd *cobra.Command) []string {
	s, err := e.session(cmd)
	if err != nil {
		return nil
	}
	var ids []string
	for _, c := range s.Store.Clients() {
		ids = append(ids, c.ID+"\t"+c.Name)
	}
	return ids
}

func (e *env) taskCompletions(cmd *cobra.Command) []string {
	s, err := e.session(cmd)
	if err != nil {
		return nil
	}
	var ids []string
	for _, t := range s.Store.Tasks() {
		ids = append(ids, t.ID+"\t"+t.Title)
	}
	return ids
}
