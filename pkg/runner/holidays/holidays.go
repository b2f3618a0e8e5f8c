// Package holidays lists the public holidays of a year.
package holidays

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/agenda/pkg/holiday"
	"tableflip.dev/agenda/pkg/printers"
)

// Holidays prints whatever the loader resolves for Year within Wait. A
// failed or slow fetch prints an empty list.
type Holidays struct {
	Loader *holiday.Loader
	Year   int
	Wait   time.Duration
	Output string
	Out    io.Writer
}

func (n *Holidays) Do(ctx context.Context) error {
	if n.Loader == nil {
		return errors.New("holidays are disabled, set holidays.enabled to turn them on")
	}
	n.Loader.Ensure(ctx, n.Year)
	if n.Wait > 0 {
		wctx, cancel := context.WithTimeout(ctx, n.Wait)
		_ = n.Loader.Wait(wctx)
		cancel()
	}
	hs, _ := n.Loader.Year(n.Year)
	if hs == nil {
		hs = []holiday.Holiday{}
	}

	if n.Output == "json" {
		return printers.JSON(n.Out, hs)
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Holidays(n.Year, hs)
	return nil
}
