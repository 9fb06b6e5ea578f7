// Package cache carries the invalidation signal between the mutation
// workflows and the read side. It is not a cache: each tag is a version
// counter the HTTP layer folds into ETags, so clients re-fetch after a
// mutation bumps the tag.
package cache

import "sync"

const (
	TagDashboard = "dashboard"
	TagMenu      = "menu"
	TagSettings  = "settings"
)

// Invalidator is the hint the workflows emit after a successful mutation.
// Invalidating an unknown tag is a no-op.
type Invalidator interface {
	Invalidate(tag string)
}

// Tags tracks a version per tag.
type Tags struct {
	mu sync.RWMutex
	v  map[string]uint64
}

func New() *Tags {
	return &Tags{v: make(map[string]uint64)}
}

func (t *Tags) Invalidate(tag string) {
	t.mu.Lock()
	t.v[tag]++
	t.mu.Unlock()
}

// Version returns the current version for a tag, starting at zero.
func (t *Tags) Version(tag string) uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.v[tag]
}

// Noop discards invalidation hints; used in tests.
type Noop struct{}

func (Noop) Invalidate(string) {}
