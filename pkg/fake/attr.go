package fake

import (
	"slices"
	"sync"
)

// attr is a single independently locked attribute. Values are copied in and out
// under the lock so a caller never observes a partially written value.
type attr[T any] struct {
	mu       sync.Mutex
	value    T
	poisoned bool
	clone    func(T) T
}

func newAttr[T any](v T) *attr[T] {
	return &attr[T]{value: v}
}

func newSliceAttr[E any](v []E) *attr[[]E] {
	return &attr[[]E]{value: slices.Clone(v), clone: slices.Clone[[]E, E]}
}

func (a *attr[T]) get() (T, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.poisoned {
		var zero T
		return zero, ErrLockFailure
	}
	if a.clone != nil {
		return a.clone(a.value), nil
	}
	return a.value, nil
}

func (a *attr[T]) set(v T) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.poisoned {
		return ErrLockFailure
	}
	if a.clone != nil {
		v = a.clone(v)
	}
	a.value = v
	return nil
}

// update runs fn with the lock held. A panic inside fn poisons the attribute
// and is re-raised to the caller.
func (a *attr[T]) update(fn func(T) (T, error)) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.poisoned {
		return ErrLockFailure
	}
	defer func() {
		if r := recover(); r != nil {
			a.poisoned = true
			panic(r)
		}
	}()
	v, err := fn(a.value)
	if err != nil {
		return err
	}
	a.value = v
	return nil
}

// idAttr reads and writes identifiers without surfacing lock failures.
type idAttr struct {
	attr[string]
}

func newIDAttr(id string) *idAttr {
	return &idAttr{attr[string]{value: id}}
}

func (a *idAttr) load() string {
	id, err := a.get()
	if err != nil {
		return ""
	}
	return id
}

func (a *idAttr) store(id string) {
	_ = a.set(id)
}
