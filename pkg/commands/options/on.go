package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/agenda"
)

const (
	layoutYearShort = "2006/1/2"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Anchor the view on a date, example: --on="2024-02-28" or --on="2/28".`)
}

// GetOn returns nil when --on was not given. The short form keeps the
// year of now.
func (o *OnOptions) GetOn(now time.Time) (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	return ParseDate(o.OnString, now)
}

// ParseDate reads YYYY-MM-DD, or M/D in the year of now.
func ParseDate(s string, now time.Time) (*time.Time, error) {
	t, err := time.Parse(agenda.DateLayout, s)
	if err != nil {
		t, err = time.Parse(layoutYearShort, fmt.Sprintf("%d/%s", now.Year(), s))
		if err != nil {
			return nil, fmt.Errorf("invalid date %q, want YYYY-MM-DD or M/D", s)
		}
	}
	return &t, nil
}

// NormalizeDate is ParseDate formatted back to YYYY-MM-DD. Empty stays
// empty.
func NormalizeDate(s string, now time.Time) (string, error) {
	if s == "" {
		return "", nil
	}
	t, err := ParseDate(s, now)
	if err != nil {
		return "", err
	}
	return t.Format(agenda.DateLayout), nil
}
