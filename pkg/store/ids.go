package store

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

const (
	taskPrefix   = "task_"
	clientPrefix = "cli_"

	maxIDAttempts = 8
)

// IDGenerator hands out ids. Tasks and clients use different prefixes, so
// their id spaces never overlap.
type IDGenerator interface {
	NewID(prefix string) string
}

// UUIDGenerator produces prefix + random UUID.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(prefix string) string {
	return prefix + uuid.NewString()
}

// Sequence produces prefix + 1, 2, 3... and is meant for tests and demos.
type Sequence struct {
	n atomic.Int64
}

func (s *Sequence) NewID(prefix string) string {
	return prefix + strconv.FormatInt(s.n.Add(1), 10)
}

// newID draws ids until one is unused. After maxIDAttempts collisions the
// generator is assumed stuck and a uuid suffix is appended.
func (s *Store) newID(prefix string, taken func(string) bool) string {
	var id string
	for i := 0; i < maxIDAttempts; i++ {
		id = s.ids.NewID(prefix)
		if !taken(id) {
			return id
		}
	}
	id = id + "-" + uuid.NewString()
	s.log.Warn("id generator collided repeatedly", "prefix", prefix, "id", id)
	return id
}
