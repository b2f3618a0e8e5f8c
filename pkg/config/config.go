// Package config loads agenda settings from .agenda files and AGENDA_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/agenda/pkg/holiday"
)

const (
	keyHolidaysEnabled = "holidays.enabled"
	keyHolidaysURL     = "holidays.url"
	keyHolidaysWait    = "holidays.wait"
	keySeed            = "seed"
	keyLogLevel        = "log.level"
)

// Config is the resolved configuration.
type Config struct {
	HolidaysEnabled bool   `json:"holidaysEnabled"`
	HolidaysURL     string `json:"holidaysUrl"`
	// HolidaysWait bounds how long one-shot commands wait for holidays
	// before rendering without them. The fetch itself is never cut short.
	HolidaysWait time.Duration `json:"holidaysWait"`
	Seed         string        `json:"seed,omitempty"`
	LogLevel     string        `json:"logLevel"`
	// File is the config file that was read, if any.
	File string `json:"file,omitempty"`
}

// Load walks ./, $AGENDA_CONFIG_PATH and the home directory for .agenda.yaml.
// A missing file is fine; a malformed one is not.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault(keyHolidaysEnabled, true)
	v.SetDefault(keyHolidaysURL, holiday.DefaultURL)
	v.SetDefault(keyHolidaysWait, "3s")
	v.SetDefault(keySeed, "")
	v.SetDefault(keyLogLevel, "warn")

	v.SetConfigName(".agenda") // .yaml is implicit
	v.SetEnvPrefix("AGENDA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("AGENDA_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read config file: %w", err)
		}
	}

	seed := v.GetString(keySeed)
	if seed != "" {
		expanded, err := homedir.Expand(seed)
		if err != nil {
			return nil, fmt.Errorf("config: expand seed path: %w", err)
		}
		seed = expanded
	}

	return &Config{
		HolidaysEnabled: v.GetBool(keyHolidaysEnabled),
		HolidaysURL:     v.GetString(keyHolidaysURL),
		HolidaysWait:    v.GetDuration(keyHolidaysWait),
		Seed:            seed,
		LogLevel:        v.GetString(keyLogLevel),
		File:            v.ConfigFileUsed(),
	}, nil
}

// Logger builds a text logger on w at the configured level.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(c.LogLevel)}))
}

// ParseLevel maps debug, info, warn and error; anything else is warn.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
