package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/agenda/pkg/runner/holidays"
)

func addHolidays(topLevel *cobra.Command, e *env) {
	oo := &base.OutputOptions{}
	year := 0

	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "List the public holidays of a year.",
		Example: `
agenda holidays
agenda holidays --year 2025
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := e.session(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			h := holidays.Holidays{
				Loader: s.Holidays,
				Year:   year,
				Wait:   e.wait(),
				Out:    cmd.OutOrStdout(),
			}
			if h.Year == 0 {
				h.Year = s.Anchor.Year()
			}
			if oo.JSON {
				h.Output = "json"
			}
			err = h.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year to list, defaults to the year on screen.")
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
