package holiday

import (
	"context"
	"log/slog"
	"sort"
	"sync"
)

// Loader fetches each year at most once, in the background. Until a year
// resolves it contributes nothing; there is no retry and no timeout.
type Loader struct {
	Source Source
	Log    *slog.Logger
	// OnLoad, when set, runs after each year resolves.
	OnLoad func(year int)

	mu    sync.Mutex
	years map[int]*pending
}

type pending struct {
	done     chan struct{}
	holidays []Holiday
}

// NewLoader returns a loader over source.
func NewLoader(source Source, log *slog.Logger) *Loader {
	return &Loader{Source: source, Log: log}
}

// Ensure starts fetching each year not already requested.
func (l *Loader) Ensure(ctx context.Context, years ...int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.years == nil {
		l.years = make(map[int]*pending)
	}
	for _, year := range years {
		if _, ok := l.years[year]; ok {
			continue
		}
		p := &pending{done: make(chan struct{})}
		l.years[year] = p
		go l.load(ctx, year, p)
	}
}

func (l *Loader) load(ctx context.Context, year int, p *pending) {
	hs := Fetch(ctx, l.Source, year, l.Log)
	l.mu.Lock()
	p.holidays = hs
	close(p.done)
	onLoad := l.OnLoad
	l.mu.Unlock()
	if onLoad != nil {
		onLoad(year)
	}
}

// Wait blocks until every requested year has resolved or ctx ends.
func (l *Loader) Wait(ctx context.Context) error {
	l.mu.Lock()
	waits := make([]chan struct{}, 0, len(l.years))
	for _, p := range l.years {
		waits = append(waits, p.done)
	}
	l.mu.Unlock()

	for _, done := range waits {
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Holidays returns every resolved holiday, ordered by date.
func (l *Loader) Holidays() []Holiday {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []Holiday
	for _, p := range l.years {
		select {
		case <-p.done:
			out = append(out, p.holidays...)
		default:
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// Year returns the resolved holidays of year, and whether it has resolved.
func (l *Loader) Year(year int) ([]Holiday, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	p, ok := l.years[year]
	if !ok {
		return nil, false
	}
	select {
	case <-p.done:
		return p.holidays, true
	default:
		return nil, false
	}
}
