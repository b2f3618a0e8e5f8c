package index

import (
	"cmp"
	"fmt"
	"sort"
	"strings"

	"tableflip.dev/agenda/pkg/agenda"
)

// SortKey names a sortable task field.
type SortKey string

const (
	ByID          SortKey = "id"
	ByTitle       SortKey = "title"
	ByDescription SortKey = "description"
	ByDeadline    SortKey = "deadline"
	ByClient      SortKey = "clientId"
	ByPriority    SortKey = "priority"
	ByCategory    SortKey = "category"
	ByRecurrence  SortKey = "recurrence"
	ByCreatedAt   SortKey = "createdAt"
)

// Direction orders a sort.
type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// SortConfig is the list's current ordering. A nil *SortConfig means
// insertion order.
type SortConfig struct {
	Key       SortKey   `json:"key"`
	Direction Direction `json:"direction"`
}

// DefaultSort orders by deadline, earliest first.
func DefaultSort() *SortConfig {
	return &SortConfig{Key: ByDeadline, Direction: Ascending}
}

// Toggle returns the ordering after the user asks to sort by key: the same
// key flips from ascending to descending, anything else starts ascending.
func (c *SortConfig) Toggle(key SortKey) *SortConfig {
	if c != nil && c.Key == key && c.Direction == Ascending {
		return &SortConfig{Key: key, Direction: Descending}
	}
	return &SortConfig{Key: key, Direction: Ascending}
}

type comparator func(a, b agenda.Task) int

// Deadlines are zero-padded YYYY-MM-DD, so byte order is date order and an
// empty deadline sorts first.
var comparators = map[SortKey]comparator{
	ByID:          func(a, b agenda.Task) int { return strings.Compare(a.ID, b.ID) },
	ByTitle:       func(a, b agenda.Task) int { return strings.Compare(a.Title, b.Title) },
	ByDescription: func(a, b agenda.Task) int { return strings.Compare(a.Description, b.Description) },
	ByDeadline:    func(a, b agenda.Task) int { return strings.Compare(a.Deadline, b.Deadline) },
	ByClient:      func(a, b agenda.Task) int { return strings.Compare(a.ClientID, b.ClientID) },
	ByPriority:    func(a, b agenda.Task) int { return cmp.Compare(a.Priority, b.Priority) },
	ByCategory:    func(a, b agenda.Task) int { return strings.Compare(a.Category, b.Category) },
	ByRecurrence:  func(a, b agenda.Task) int { return strings.Compare(string(a.Recurrence), string(b.Recurrence)) },
	ByCreatedAt:   func(a, b agenda.Task) int { return a.CreatedAt.Compare(b.CreatedAt) },
}

// SortKeys lists the sortable fields.
func SortKeys() []SortKey {
	return []SortKey{ByTitle, ByClient, ByDeadline, ByPriority, ByCategory, ByRecurrence, ByCreatedAt, ByDescription, ByID}
}

// ParseSortKey matches a field name case-insensitively. "client" is
// accepted for clientId and "created" for createdAt.
func ParseSortKey(raw string) (SortKey, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "client":
		return ByClient, nil
	case "created":
		return ByCreatedAt, nil
	}
	for key := range comparators {
		if strings.ToLower(string(key)) == s {
			return key, nil
		}
	}
	return "", fmt.Errorf("index: unknown sort key %q", raw)
}

// SortTasks returns a sorted copy. Ascending is stable; descending is the
// exact reverse of ascending, so ties flip too.
func SortTasks(tasks []agenda.Task, config *SortConfig) []agenda.Task {
	out := make([]agenda.Task, len(tasks))
	copy(out, tasks)
	if config == nil {
		return out
	}
	compare, ok := comparators[config.Key]
	if !ok {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		return compare(out[i], out[j]) < 0
	})
	if config.Direction == Descending {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}
