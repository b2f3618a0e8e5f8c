package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/index"
)

// SortOptions
type SortOptions struct {
	Key  string
	Desc bool
}

func AddSortArgs(cmd *cobra.Command, o *SortOptions) {
	keys := make([]string, 0, len(index.SortKeys()))
	for _, k := range index.SortKeys() {
		keys = append(keys, string(k))
	}
	cmd.Flags().StringVarP(&o.Key, "sort", "s", string(index.ByDeadline),
		"Sort by one of "+strings.Join(keys, ", ")+".")
	cmd.Flags().BoolVar(&o.Desc, "desc", false,
		"Sort descending.")
	_ = cmd.RegisterFlagCompletionFunc("sort", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return keys, cobra.ShellCompDirectiveNoFileComp
	})
}

// GetSort returns the requested ordering, or nil for --sort=none.
func (o *SortOptions) GetSort() (*index.SortConfig, error) {
	if strings.EqualFold(o.Key, "none") {
		return nil, nil
	}
	key, err := index.ParseSortKey(o.Key)
	if err != nil {
		return nil, err
	}
	sc := &index.SortConfig{Key: key, Direction: index.Ascending}
	if o.Desc {
		sc.Direction = index.Descending
	}
	return sc, nil
}
