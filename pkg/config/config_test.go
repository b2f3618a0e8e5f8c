package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mitchellh/go-homedir"

	"tableflip.dev/agenda/pkg/holiday"
)

func isolate(t *testing.T) string {
	t.Helper()
	homedir.DisableCache = true
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("AGENDA_CONFIG_PATH", "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.HolidaysEnabled || cfg.HolidaysURL != holiday.DefaultURL {
		t.Fatalf("unexpected holiday defaults %+v", cfg)
	}
	if cfg.HolidaysWait != 3*time.Second {
		t.Fatalf("expected 3s holiday wait, got %v", cfg.HolidaysWait)
	}
	if cfg.Seed != "" || cfg.LogLevel != "warn" || cfg.File != "" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	home := isolate(t)
	dir := t.TempDir()
	data := "holidays:\n  enabled: false\n  url: http://localhost:9/feriados\nseed: ~/agenda-seed.yaml\n"
	if err := os.WriteFile(filepath.Join(dir, ".agenda.yaml"), []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("AGENDA_CONFIG_PATH", dir)
	t.Setenv("AGENDA_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HolidaysEnabled {
		t.Fatalf("expected holidays disabled")
	}
	if cfg.HolidaysURL != "http://localhost:9/feriados" {
		t.Fatalf("unexpected url %q", cfg.HolidaysURL)
	}
	if want := filepath.Join(home, "agenda-seed.yaml"); cfg.Seed != want {
		t.Fatalf("expected seed %q, got %q", want, cfg.Seed)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected env override, got %q", cfg.LogLevel)
	}
	if cfg.File != filepath.Join(dir, ".agenda.yaml") {
		t.Fatalf("unexpected config file %q", cfg.File)
	}
}

func TestLoadMalformed(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".agenda.yaml"), []byte("holidays: [unterminated\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("AGENDA_CONFIG_PATH", dir)

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for malformed config")
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{"debug": slog.LevelDebug, "INFO": slog.LevelInfo, "error": slog.LevelError, "": slog.LevelWarn, "loud": slog.LevelWarn} {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q): expected %v, got %v", in, want, got)
		}
	}
}
