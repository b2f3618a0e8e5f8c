package store

import (
	"fmt"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/agenda/pkg/agenda"
)

// Seed is the dataset a store starts from.
type Seed struct {
	Clients []agenda.Client
	Tasks   []agenda.Task
}

// DefaultSeed is the built-in demo dataset, with deadlines relative to now.
func DefaultSeed(now time.Time) Seed {
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format(agenda.DateLayout)
	}
	return Seed{
		Clients: []agenda.Client{
			{ID: "cli1", Name: "Panther Blazz"},
			{ID: "cli2", Name: "Gama Clinic"},
			{ID: "cli3", Name: "Clean Health"},
		},
		Tasks: []agenda.Task{
			{
				ID:          "task1",
				Title:       "Create ad campaign",
				Description: "Focus on the South and Southeast audience.",
				Deadline:    day(0),
				ClientID:    "cli1",
				Priority:    agenda.High,
				Category:    "Ad Management",
				Recurrence:  agenda.RecurrenceNone,
				CreatedAt:   now,
			},
			{
				ID:          "task2",
				Title:       "Edit institutional video",
				Description: "Video for the clinic's 15th anniversary.",
				Deadline:    day(2),
				ClientID:    "cli2",
				Priority:    agenda.Medium,
				Category:    "Video Editing",
				Recurrence:  agenda.RecurrenceNone,
				CreatedAt:   now,
			},
			{
				ID:         "task3",
				Title:      "Schedule the week's posts",
				Deadline:   day(-1),
				ClientID:   "cli3",
				Priority:   agenda.Low,
				Category:   "Card",
				Recurrence: agenda.RecurrenceWeekly,
				CreatedAt:  now,
			},
		},
	}
}

type seedFile struct {
	Clients []agenda.Client `mapstructure:"clients"`
	Tasks   []seedTask      `mapstructure:"tasks"`
}

type seedTask struct {
	ID          string `mapstructure:"id"`
	Title       string `mapstructure:"title"`
	Description string `mapstructure:"description"`
	Deadline    string `mapstructure:"deadline"`
	ClientID    string `mapstructure:"clientId"`
	Priority    int    `mapstructure:"priority"`
	Category    string `mapstructure:"category"`
	Recurrence  string `mapstructure:"recurrence"`
	CreatedAt   string `mapstructure:"createdAt"`
}

// LoadSeed reads a yaml, json or toml seed file. Tasks without createdAt
// are stamped with now.
func LoadSeed(path string, now time.Time) (Seed, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return Seed{}, fmt.Errorf("store: expand seed path: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(expanded)
	if err := v.ReadInConfig(); err != nil {
		return Seed{}, fmt.Errorf("store: read seed %s: %w", expanded, err)
	}
	var raw seedFile
	if err := v.Unmarshal(&raw); err != nil {
		return Seed{}, fmt.Errorf("store: decode seed %s: %w", expanded, err)
	}

	seed := Seed{Clients: raw.Clients, Tasks: make([]agenda.Task, 0, len(raw.Tasks))}
	for _, rt := range raw.Tasks {
		t := agenda.Task{
			ID:          rt.ID,
			Title:       rt.Title,
			Description: rt.Description,
			Deadline:    rt.Deadline,
			ClientID:    rt.ClientID,
			Priority:    agenda.Priority(rt.Priority),
			Category:    rt.Category,
			Recurrence:  agenda.Recurrence(rt.Recurrence),
			CreatedAt:   now,
		}
		if t.Recurrence == "" {
			t.Recurrence = agenda.RecurrenceNone
		}
		if rt.CreatedAt != "" {
			if t.CreatedAt, err = time.Parse(time.RFC3339, rt.CreatedAt); err != nil {
				return Seed{}, fmt.Errorf("store: seed task %s createdAt: %w", rt.ID, err)
			}
		}
		if t.ID == "" {
			return Seed{}, fmt.Errorf("store: seed task %q has no id", rt.Title)
		}
		if err := t.Validate(); err != nil {
			return Seed{}, fmt.Errorf("store: seed task %s: %w", rt.ID, err)
		}
		seed.Tasks = append(seed.Tasks, t)
	}
	for _, c := range seed.Clients {
		if c.ID == "" {
			return Seed{}, fmt.Errorf("store: seed client %q has no id", c.Name)
		}
	}
	if err := checkSeedIDs(seed); err != nil {
		return Seed{}, err
	}
	return seed, nil
}

// checkSeedIDs rejects an id used twice in a collection, or by both a
// client and a task.
func checkSeedIDs(seed Seed) error {
	clients := make(map[string]bool, len(seed.Clients))
	for _, c := range seed.Clients {
		if clients[c.ID] {
			return fmt.Errorf("store: seed client %s: duplicate id", c.ID)
		}
		clients[c.ID] = true
	}
	tasks := make(map[string]bool, len(seed.Tasks))
	for _, t := range seed.Tasks {
		if tasks[t.ID] {
			return fmt.Errorf("store: seed task %s: duplicate id", t.ID)
		}
		if clients[t.ID] {
			return fmt.Errorf("store: seed task %s: duplicate id, already a client", t.ID)
		}
		tasks[t.ID] = true
	}
	return nil
}
