package agenda

import (
	"fmt"
	"strconv"
	"strings"
)

// Priority ranks a task from Low (1) to High (3).
type Priority int

const (
	Low    Priority = 1
	Medium Priority = 2
	High   Priority = 3
)

// PriorityDetail is how a priority is shown.
type PriorityDetail struct {
	Label string
	Color string
}

var priorityDetails = map[Priority]PriorityDetail{
	Low:    {Label: "Low", Color: "green"},
	Medium: {Label: "Medium", Color: "yellow"},
	High:   {Label: "High", Color: "red"},
}

// Valid is true for Low, Medium and High.
func (p Priority) Valid() bool {
	_, ok := priorityDetails[p]
	return ok
}

// Detail returns the display descriptor. Unknown priorities get a blank
// label and no color.
func (p Priority) Detail() PriorityDetail {
	if d, ok := priorityDetails[p]; ok {
		return d
	}
	return PriorityDetail{Label: strconv.Itoa(int(p))}
}

func (p Priority) String() string {
	return p.Detail().Label
}

// ParsePriority accepts 1-3 or a label (low, medium, high).
func ParsePriority(raw string) (Priority, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if n, err := strconv.Atoi(s); err == nil {
		if p := Priority(n); p.Valid() {
			return p, nil
		}
	}
	for p, d := range priorityDetails {
		if strings.ToLower(d.Label) == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: priority %q", ErrInvalid, raw)
}
