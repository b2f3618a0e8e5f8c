package options

import (
	"testing"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/agenda"
	"tableflip.dev/agenda/pkg/index"
)

var now = time.Date(2024, time.December, 5, 12, 0, 0, 0, time.UTC)

func TestNormalizeDate(t *testing.T) {
	for in, want := range map[string]string{
		"":           "",
		"2025-01-03": "2025-01-03",
		"1/3":        "2024-01-03",
		"2/29":       "2024-02-29",
	} {
		got, err := NormalizeDate(in, now)
		if err != nil {
			t.Fatalf("NormalizeDate(%q): unexpected error: %v", in, err)
		}
		if got != want {
			t.Fatalf("NormalizeDate(%q): expected %q, got %q", in, want, got)
		}
	}
	for _, bad := range []string{"tomorrow", "2024-2-3", "13/1"} {
		if _, err := NormalizeDate(bad, now); err == nil {
			t.Fatalf("NormalizeDate(%q): expected error", bad)
		}
	}
}

func TestGetOn(t *testing.T) {
	o := &OnOptions{}
	if on, err := o.GetOn(now); on != nil || err != nil {
		t.Fatalf("expected nil without --on, got %v, %v", on, err)
	}
	o.OnString = "12/31"
	on, err := o.GetOn(now)
	if err != nil || on.Format(agenda.DateLayout) != "2024-12-31" {
		t.Fatalf("unexpected --on %v, %v", on, err)
	}
}

func TestGetSort(t *testing.T) {
	o := &SortOptions{Key: "Priority", Desc: true}
	sc, err := o.GetSort()
	if err != nil || sc.Key != index.ByPriority || sc.Direction != index.Descending {
		t.Fatalf("unexpected sort %+v, %v", sc, err)
	}
	o = &SortOptions{Key: "none"}
	if sc, err := o.GetSort(); sc != nil || err != nil {
		t.Fatalf("expected no ordering, got %+v, %v", sc, err)
	}
	o = &SortOptions{Key: "color"}
	if _, err := o.GetSort(); err == nil {
		t.Fatalf("expected unknown key error")
	}
}

func TestTaskOptions(t *testing.T) {
	o := &TaskOptions{Title: "Print banners", Client: "cli1", Priority: "2", Deadline: "1/3", Recurrence: "Weekly", Category: "Event"}
	task, err := o.Task(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Deadline != "2024-01-03" || task.Priority != agenda.Medium || task.Recurrence != agenda.RecurrenceWeekly {
		t.Fatalf("unexpected task %+v", task)
	}

	o.Priority = "urgent"
	if _, err := o.Task(now); err == nil {
		t.Fatalf("expected priority error")
	}
}

func TestTaskOptionsChanged(t *testing.T) {
	o := &TaskOptions{}
	cmd := &cobra.Command{Use: "edit", RunE: func(*cobra.Command, []string) error { return nil }}
	AddTaskArgs(cmd, o)
	if err := cmd.ParseFlags([]string{"--priority", "3", "--deadline", ""}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	changed := o.Changed(cmd)
	if len(changed) != 2 || changed["priority"] != "3" || changed["deadline"] != "" {
		t.Fatalf("unexpected changes %v", changed)
	}
}
