package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/agenda/pkg/calendar"
	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/view"
)

type granularity struct {
	g       calendar.Granularity
	aliases []string
	short   string
}

var granularities = []granularity{
	{g: calendar.Month, aliases: []string{"monthly", "m"}, short: "Show the month grid with tasks and holidays."},
	{g: calendar.Week, aliases: []string{"weekly", "w"}, short: "Show the Sunday-first week, day by day."},
	{g: calendar.Day, aliases: []string{"daily", "d"}, short: "Show one day in full."},
}

func addView(topLevel *cobra.Command, e *env, g granularity) {
	on := &options.OnOptions{}
	oo := &base.OutputOptions{}

	cmd := &cobra.Command{
		Use:     string(g.g),
		Aliases: g.aliases,
		Short:   g.short,
		Example: fmt.Sprintf(`
agenda %[1]s
agenda %[1]s --on 2024-12-31
agenda %[1]s --on 2/28 --json
`, g.g),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := e.session(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			at, err := on.GetOn(s.Now())
			if err != nil {
				return oo.HandleError(err)
			}
			v := view.View{
				Session:     s,
				Granularity: g.g,
				On:          at,
				Wait:        e.wait(),
				ShowID:      e.ids.ShowID,
				Out:         cmd.OutOrStdout(),
			}
			if oo.JSON {
				v.Output = "json"
			}
			err = v.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddOnArgs(cmd, on)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
