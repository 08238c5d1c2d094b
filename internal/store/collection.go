// internal/store/collection.go
package store

import "sync"

// Record is anything a Collection can hold. Key returns the record id used
// by lookups; the collection itself never enforces key uniqueness — a caller
// that appends two records with the same key gets two records.
type Record interface {
	Key() string
}

// Collection is an ordered in-memory sequence of records. Insertion order is
// the canonical iteration order and no operation reorders. All reads hand
// out copies of the backing slice so callers hold stable snapshots.
type Collection[T Record] struct {
	mu    sync.RWMutex
	items []T
}

func NewCollection[T Record]() *Collection[T] {
	return &Collection[T]{}
}

// Append adds a record at the end of the sequence.
func (c *Collection[T]) Append(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
}

// Get returns the first record in sequence order whose key matches id.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if item.Key() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Replace applies fn to the first record whose key matches id, keeping its
// position. A miss leaves the collection unchanged and returns false.
func (c *Collection[T]) Replace(id string, fn func(T) T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if item.Key() == id {
			c.items[i] = fn(item)
			return true
		}
	}
	return false
}

// Remove deletes the first record whose key matches id, preserving the
// relative order of the rest.
func (c *Collection[T]) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if item.Key() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Collection[T]) Contains(id string) bool {
	_, ok := c.Get(id)
	return ok
}

// Filter returns every record matching pred, in original relative order.
func (c *Collection[T]) Filter(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []T
	for _, item := range c.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// All returns the full sequence in insertion order as a fresh slice.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
