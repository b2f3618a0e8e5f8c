package holiday

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tableflip.dev/agenda/pkg/calendar"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestHTTPSource(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[
			{"date":"2024-01-01","name":"Confraternização mundial","type":"national"},
			{"date":"2024-02-13","name":"Carnaval","type":"national"}
		]`)
	}))
	defer srv.Close()

	hs, err := HTTPSource{BaseURL: srv.URL + "/api/feriados/v1/", Client: srv.Client()}.Holidays(context.Background(), 2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/feriados/v1/2024" {
		t.Fatalf("unexpected request path %q", gotPath)
	}
	if len(hs) != 2 || hs[1] != (Holiday{Date: "2024-02-13", Name: "Carnaval"}) {
		t.Fatalf("unexpected holidays %+v", hs)
	}
}

func TestHTTPSourceStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := (HTTPSource{BaseURL: srv.URL, Client: srv.Client()}).Holidays(context.Background(), 1800); err == nil {
		t.Fatalf("expected error for 404")
	}
	if hs := Fetch(context.Background(), HTTPSource{BaseURL: srv.URL, Client: srv.Client()}, 1800, quiet); len(hs) != 0 {
		t.Fatalf("expected no holidays, got %+v", hs)
	}
}

func TestFetchDegradesToEmpty(t *testing.T) {
	failing := SourceFunc(func(context.Context, int) ([]Holiday, error) {
		return nil, errors.New("network unreachable")
	})
	hs := Fetch(context.Background(), failing, 2024, quiet)
	if hs == nil || len(hs) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", hs)
	}

	cells := Overlay(calendar.MonthCells(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)), hs)
	for _, c := range cells {
		if c.Holiday != "" {
			t.Fatalf("expected no holiday on %s, got %q", c.Date, c.Holiday)
		}
	}
}

func TestFetchUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	if hs := Fetch(context.Background(), HTTPSource{BaseURL: url}, 2024, nil); len(hs) != 0 {
		t.Fatalf("expected no holidays, got %+v", hs)
	}
}

func TestOverlay(t *testing.T) {
	cells := calendar.MonthCells(time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC))
	hs := []Holiday{
		{Date: "2024-12-25", Name: "Natal"},
		{Date: "2024-12-25", Name: "Second name"},
		{Date: "2025-01-01", Name: "Confraternização mundial"},
	}
	out := Overlay(cells, hs)
	if len(out) != len(cells) {
		t.Fatalf("expected %d cells, got %d", len(cells), len(out))
	}
	named := map[string]string{}
	for _, c := range out {
		if c.Holiday != "" {
			named[c.Date] = c.Holiday
		}
	}
	if len(named) != 2 || named["2024-12-25"] != "Natal" || named["2025-01-01"] != "Confraternização mundial" {
		t.Fatalf("unexpected overlay %v", named)
	}
	for _, c := range cells {
		if c.Holiday != "" {
			t.Fatalf("overlay modified its input at %s", c.Date)
		}
	}
}

func TestLoaderResolvesLate(t *testing.T) {
	release := make(chan struct{})
	calls := 0
	src := SourceFunc(func(ctx context.Context, year int) ([]Holiday, error) {
		calls++
		<-release
		return []Holiday{{Date: "2024-04-21", Name: "Tiradentes"}}, nil
	})
	loaded := make(chan int, 1)
	l := NewLoader(src, quiet)
	l.OnLoad = func(year int) { loaded <- year }

	l.Ensure(context.Background(), 2024)
	l.Ensure(context.Background(), 2024)

	if hs := l.Holidays(); len(hs) != 0 {
		t.Fatalf("expected nothing before the fetch resolves, got %+v", hs)
	}
	if _, ok := l.Year(2024); ok {
		t.Fatalf("expected 2024 to be pending")
	}

	close(release)
	select {
	case year := <-loaded:
		if year != 2024 {
			t.Fatalf("unexpected year %d", year)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for holidays")
	}

	if err := l.Wait(context.Background()); err != nil {
		t.Fatalf("wait: %v", err)
	}
	hs, ok := l.Year(2024)
	if !ok || len(hs) != 1 || hs[0].Name != "Tiradentes" {
		t.Fatalf("unexpected holidays %+v (%v)", hs, ok)
	}
	if calls != 1 {
		t.Fatalf("expected one fetch, got %d", calls)
	}
}

func TestLoaderWaitHonorsContext(t *testing.T) {
	block := make(chan struct{})
	defer close(block)
	l := NewLoader(SourceFunc(func(context.Context, int) ([]Holiday, error) {
		<-block
		return nil, nil
	}), quiet)
	l.Ensure(context.Background(), 2024)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := l.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestLoaderFailureIsEmpty(t *testing.T) {
	l := NewLoader(SourceFunc(func(context.Context, int) ([]Holiday, error) {
		return nil, errors.New("boom")
	}), quiet)
	l.Ensure(context.Background(), 2024, 2025)
	if err := l.Wait(context.Background()); err != nil {
		t.Fatalf("wait: %v", err)
	}
	if hs := l.Holidays(); len(hs) != 0 {
		t.Fatalf("expected no holidays, got %+v", hs)
	}
	if _, ok := l.Year(2025); !ok {
		t.Fatalf("expected 2025 to be resolved")
	}
}
