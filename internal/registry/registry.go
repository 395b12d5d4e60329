// Package registry provides an ordered collection of child handles resolved by identifier.
package registry

import (
	"slices"
	"sync"
)

// Identified is anything that exposes a (possibly mutable) identifier.
type Identified interface {
	ID() string
}

// Registry keeps children in insertion order behind a single lock.
//
// Duplicate identifiers are accepted; lookups return the first inserted match.
// Readers always work on a copy, so holding a snapshot never blocks writers.
type Registry[T Identified] struct {
	mu    sync.Mutex
	items []T
}

// New creates an empty registry
func New[T Identified]() *Registry[T] {
	return &Registry[T]{}
}

// Add appends item to the registry
func (r *Registry[T]) Add(item T) {
	r.mu.Lock()
	r.items = append(r.items, item)
	r.mu.Unlock()
}

// Update replaces the child list with the result of fn. fn receives a copy of
// the current list and runs with the registry locked; an error leaves the list
// unchanged.
func (r *Registry[T]) Update(fn func(current []T) ([]T, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	next, err := fn(slices.Clone(r.items))
	if err != nil {
		return err
	}
	r.items = slices.Clone(next)
	return nil
}

// Snapshot returns a copy of the child list
func (r *Registry[T]) Snapshot() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

// Find returns the first child whose identifier equals id.
// Identifiers are read outside the registry lock.
func (r *Registry[T]) Find(id string) (T, bool) {
	for _, item := range r.Snapshot() {
		if item.ID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// First returns the first inserted child
func (r *Registry[T]) First() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		var zero T
		return zero, false
	}
	return r.items[0], true
}
