// Package holiday fetches public holidays and attaches them to calendar
// cells. A failed fetch never reaches the caller: it is logged and the
// calendar simply shows no holidays.
package holiday

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"tableflip.dev/agenda/pkg/calendar"
)

// DefaultURL is the BrasilAPI national holidays endpoint; the year is
// appended as the last path segment.
const DefaultURL = "https://brasilapi.com.br/api/feriados/v1"

// Holiday is a named date.
type Holiday struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// Source looks up the holidays of a year.
type Source interface {
	Holidays(ctx context.Context, year int) ([]Holiday, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, year int) ([]Holiday, error)

func (f SourceFunc) Holidays(ctx context.Context, year int) ([]Holiday, error) {
	return f(ctx, year)
}

// HTTPSource reads holidays from a BrasilAPI-compatible endpoint.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

func (s HTTPSource) Holidays(ctx context.Context, year int) ([]Holiday, error) {
	base := s.BaseURL
	if base == "" {
		base = DefaultURL
	}
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	url := fmt.Sprintf("%s/%d", strings.TrimRight(base, "/"), year)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("holiday: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("holiday: get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("holiday: get %s: unexpected status %s", url, resp.Status)
	}

	var payload []struct {
		Date string `json:"date"`
		Name string `json:"name"`
		Type string `json:"type"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("holiday: decode %s: %w", url, err)
	}
	out := make([]Holiday, 0, len(payload))
	for _, p := range payload {
		out = append(out, Holiday{Date: p.Date, Name: p.Name})
	}
	return out, nil
}

// Fetch asks source for a year and turns any failure into an empty list.
func Fetch(ctx context.Context, source Source, year int, log *slog.Logger) []Holiday {
	if source == nil {
		return []Holiday{}
	}
	hs, err := source.Holidays(ctx, year)
	if err != nil {
		if log != nil {
			log.Warn("holiday fetch failed", "year", year, "error", err)
		}
		return []Holiday{}
	}
	if hs == nil {
		return []Holiday{}
	}
	return hs
}

// Overlay returns a copy of cells with the first matching holiday name set
// on each cell.
func Overlay(cells []calendar.Cell, holidays []Holiday) []calendar.Cell {
	names := make(map[string]string, len(holidays))
	for _, h := range holidays {
		if _, ok := names[h.Date]; !ok {
			names[h.Date] = h.Name
		}
	}
	out := make([]calendar.Cell, len(cells))
	for i, c := range cells {
		if name, ok := names[c.Date]; ok {
			c.Holiday = name
		}
		out[i] = c
	}
	return out
}

// OnDate returns the holidays falling on date.
func OnDate(holidays []Holiday, date string) []Holiday {
	var out []Holiday
	for _, h := range holidays {
		if h.Date == date {
			out = append(out, h)
		}
	}
	return out
}
