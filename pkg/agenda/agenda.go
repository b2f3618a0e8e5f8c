// Package agenda defines the clients and tasks tracked by the agenda.
package agenda

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalid is wrapped by every validation failure in this package.
var ErrInvalid = errors.New("agenda: invalid")

// DateLayout is the normalized form of every calendar date.
const DateLayout = "2006-01-02"

// Client is a customer that owns tasks.
type Client struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Validate reports whether the client can be saved.
func (c Client) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: client name required", ErrInvalid)
	}
	return nil
}

// Task is a unit of work, optionally due on a calendar date.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Deadline    string     `json:"deadline,omitempty"`
	ClientID    string     `json:"clientId"`
	Priority    Priority   `json:"priority"`
	Category    string     `json:"category,omitempty"`
	Recurrence  Recurrence `json:"recurrence,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// MarshalJSON writes a null deadline for inbox tasks.
func (t Task) MarshalJSON() ([]byte, error) {
	type plain Task
	var deadline *string
	if t.HasDeadline() {
		deadline = &t.Deadline
	}
	return json.Marshal(struct {
		plain
		Deadline *string `json:"deadline"`
	}{plain(t), deadline})
}

// HasDeadline is false for inbox tasks.
func (t Task) HasDeadline() bool {
	return t.Deadline != ""
}

// Validate reports whether the task can be saved. It does not check that
// ClientID refers to a known client.
func (t Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: task title required", ErrInvalid)
	}
	if strings.TrimSpace(t.ClientID) == "" {
		return fmt.Errorf("%w: task client required", ErrInvalid)
	}
	if t.Deadline != "" {
		if err := ValidateDate(t.Deadline); err != nil {
			return err
		}
	}
	if !t.Priority.Valid() {
		return fmt.Errorf("%w: priority %d", ErrInvalid, t.Priority)
	}
	if !t.Recurrence.Valid() {
		return fmt.Errorf("%w: recurrence %q", ErrInvalid, t.Recurrence)
	}
	return nil
}

// ValidateDate checks that s is a zero-padded YYYY-MM-DD date.
func ValidateDate(s string) error {
	d, err := time.Parse(DateLayout, s)
	if err != nil || d.Format(DateLayout) != s {
		return fmt.Errorf("%w: date %q, want YYYY-MM-DD", ErrInvalid, s)
	}
	return nil
}
