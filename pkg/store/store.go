// Package store owns the in-memory client and task collections. Views read
// copies; every change goes through the operations here, each applied
// atomically under the store's lock.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"tableflip.dev/agenda/pkg/agenda"
	"tableflip.dev/agenda/pkg/confirm"
)

var (
	// ErrTaskNotFound is returned when no task has the requested id.
	ErrTaskNotFound = errors.New("store: task not found")
	// ErrClientNotFound is returned when no client has the requested id.
	ErrClientNotFound = errors.New("store: client not found")
)

const (
	deleteTaskTitle     = "Delete task"
	deleteTaskMessage   = "Are you sure you want to delete this task? This cannot be undone."
	deleteClientTitle   = "Delete client"
	deleteClientMessage = "Deleting this client also removes all of its tasks. Continue?"
)

// Store holds the agenda's clients and tasks in insertion order.
type Store struct {
	mu      sync.RWMutex
	tasks   []agenda.Task
	clients []agenda.Client

	ids     IDGenerator
	now     func() time.Time
	confirm confirm.Confirmer
	log     *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithIDs replaces the UUID id generator.
func WithIDs(g IDGenerator) Option {
	return func(s *Store) { s.ids = g }
}

// WithClock replaces time.Now for createdAt stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithConfirmer sets who is asked before destructive deletes. The default
// refuses every delete.
func WithConfirmer(c confirm.Confirmer) Option {
	return func(s *Store) { s.confirm = c }
}

// WithLogger sets the logger. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithSeed loads initial collections as given, without validation, so a
// seed with dangling client references is kept and reported.
func WithSeed(seed Seed) Option {
	return func(s *Store) {
		s.clients = append([]agenda.Client(nil), seed.Clients...)
		s.tasks = append([]agenda.Task(nil), seed.Tasks...)
	}
}

// New builds a store.
func New(opts ...Option) *Store {
	s := &Store{
		ids:     UUIDGenerator{},
		now:     time.Now,
		confirm: confirm.Never,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, t := range s.tasks {
		if s.clientIndex(t.ClientID) < 0 {
			s.log.Warn("task references unknown client", "task", t.ID, "client", t.ClientID)
		}
	}
	return s
}

// Tasks returns a copy of every task in insertion order.
func (s *Store) Tasks() []agenda.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]agenda.Task(nil), s.tasks...)
}

// Clients returns a copy of every client in insertion order.
func (s *Store) Clients() []agenda.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]agenda.Client(nil), s.clients...)
}

// Task looks up a task by id.
func (s *Store) Task(id string) (agenda.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.taskIndex(id); i >= 0 {
		return s.tasks[i], true
	}
	return agenda.Task{}, false
}

// Client looks up a client by id.
func (s *Store) Client(id string) (agenda.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.clientIndex(id); i >= 0 {
		return s.clients[i], true
	}
	return agenda.Client{}, false
}

// CreateTask appends t under a fresh id stamped with the current time. Any
// ID or CreatedAt on t is ignored.
func (s *Store) CreateTask(t agenda.Task) (agenda.Task, error) {
	if t.Recurrence == "" {
		t.Recurrence = agenda.RecurrenceNone
	}
	if err := t.Validate(); err != nil {
		return agenda.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clientIndex(t.ClientID) < 0 {
		return agenda.Task{}, fmt.Errorf("%w: %s", ErrClientNotFound, t.ClientID)
	}
	t.ID = s.newID(taskPrefix, func(id string) bool { return s.taskIndex(id) >= 0 })
	t.CreatedAt = s.now()
	s.tasks = append(s.tasks, t)
	return t, nil
}

// UpdateTask replaces the task with t.ID in place. CreatedAt is kept from
// the stored task.
func (s *Store) UpdateTask(t agenda.Task) (agenda.Task, error) {
	if t.Recurrence == "" {
		t.Recurrence = agenda.RecurrenceNone
	}
	if err := t.Validate(); err != nil {
		return agenda.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.taskIndex(t.ID)
	if i < 0 {
		return agenda.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, t.ID)
	}
	if s.clientIndex(t.ClientID) < 0 {
		return agenda.Task{}, fmt.Errorf("%w: %s", ErrClientNotFound, t.ClientID)
	}
	t.CreatedAt = s.tasks[i].CreatedAt
	s.tasks[i] = t
	return t, nil
}

// UpdateTaskField sets one editable field from its text form.
func (s *Store) UpdateTaskField(id, field, value string) (agenda.Task, error) {
	return s.UpdateTaskFields(id, map[string]string{field: value})
}

// UpdateTaskFields sets several editable fields at once. Nothing changes
// unless every value is valid.
func (s *Store) UpdateTaskFields(id string, fields map[string]string) (agenda.Task, error) {
	t, ok := s.Task(id)
	if !ok {
		return agenda.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := setField(&t, name, fields[name]); err != nil {
			return agenda.Task{}, err
		}
	}
	return s.UpdateTask(t)
}

func setField(t *agenda.Task, field, value string) error {
	switch strings.ToLower(strings.TrimSpace(field)) {
	case "title":
		t.Title = value
	case "description":
		t.Description = value
	case "deadline":
		t.Deadline = strings.TrimSpace(value)
	case "client", "clientid":
		t.ClientID = strings.TrimSpace(value)
	case "category":
		t.Category = value
	case "priority":
		p, err := agenda.ParsePriority(value)
		if err != nil {
			return err
		}
		t.Priority = p
	case "recurrence":
		r, err := agenda.ParseRecurrence(value)
		if err != nil {
			return err
		}
		t.Recurrence = r
	default:
		return fmt.Errorf("%w: field %q is not editable", agenda.ErrInvalid, field)
	}
	return nil
}

// ReassignDeadline moves a task to date, as a calendar drop does. An
// unknown id changes nothing and reports false.
func (s *Store) ReassignDeadline(id, date string) (bool, error) {
	if err := agenda.ValidateDate(date); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.taskIndex(id)
	if i < 0 {
		return false, nil
	}
	s.tasks[i].Deadline = date
	return true, nil
}

// DeleteTask removes one task once the confirmer agrees. A declined prompt
// returns false and no error.
func (s *Store) DeleteTask(ctx context.Context, id string) (bool, error) {
	if _, ok := s.Task(id); !ok {
		return false, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	ok, err := s.confirm.Confirm(ctx, deleteTaskTitle, deleteTaskMessage)
	if err != nil || !ok {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.taskIndex(id)
	if i < 0 {
		return false, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	s.tasks = append(s.tasks[:i:i], s.tasks[i+1:]...)
	return true, nil
}

// CreateClient appends c under a fresh id.
func (s *Store) CreateClient(c agenda.Client) (agenda.Client, error) {
	if err := c.Validate(); err != nil {
		return agenda.Client{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.newID(clientPrefix, func(id string) bool { return s.clientIndex(id) >= 0 })
	s.clients = append(s.clients, c)
	return c, nil
}

// UpdateClient replaces the client with c.ID in place.
func (s *Store) UpdateClient(c agenda.Client) (agenda.Client, error) {
	if err := c.Validate(); err != nil {
		return agenda.Client{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.clientIndex(c.ID)
	if i < 0 {
		return agenda.Client{}, fmt.Errorf("%w: %s", ErrClientNotFound, c.ID)
	}
	s.clients[i] = c
	return c, nil
}

// DeleteClient removes a client and every task it owns in one step, once
// the confirmer agrees.
func (s *Store) DeleteClient(ctx context.Context, id string) (bool, error) {
	if _, ok := s.Client(id); !ok {
		return false, fmt.Errorf("%w: %s", ErrClientNotFound, id)
	}
	ok, err := s.confirm.Confirm(ctx, deleteClientTitle, deleteClientMessage)
	if err != nil || !ok {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.clientIndex(id)
	if i < 0 {
		return false, fmt.Errorf("%w: %s", ErrClientNotFound, id)
	}
	clients := make([]agenda.Client, 0, len(s.clients)-1)
	clients = append(clients, s.clients[:i]...)
	clients = append(clients, s.clients[i+1:]...)

	tasks := make([]agenda.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.ClientID != id {
			tasks = append(tasks, t)
		}
	}
	s.clients, s.tasks = clients, tasks
	return true, nil
}

func (s *Store) taskIndex(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) clientIndex(id string) int {
	for i, c := range s.clients {
		if c.ID == id {
			return i
		}
	}
	return -1
}
