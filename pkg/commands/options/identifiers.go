package options

import (
	"github.com/spf13/cobra"
)

// IDOptions
type IDOptions struct {
	ShowID bool
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.PersistentFlags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each task.")
}
