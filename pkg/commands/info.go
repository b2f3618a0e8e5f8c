package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Where settings come from and what the agenda holds.",
		Example: `
agenda info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := e.session(cmd)
			if err != nil {
				return err
			}
			i := info.Info{
				Config: e.cfg,
				Store:  s.Store,
				Out:    cmd.OutOrStdout(),
			}
			return i.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
