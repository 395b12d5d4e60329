package fake

import (
	"fmt"
	"sort"

	"github.com/cornelk/hashmap"
	"github.com/sirupsen/logrus"
)

// Manager is the set of live adapters known to one collaborator. Adapters are
// keyed by the identifier they had when registered; each key is unique.
type Manager struct {
	adapters *hashmap.Map[string, *Adapter]
	logger   *logrus.Logger
}

// NewManager creates an empty manager. Adapters created through it share logger.
func NewManager(logger *logrus.Logger) *Manager {
	if logger == nil {
		logger = discardLogger
	}
	return &Manager{
		adapters: hashmap.New[string, *Adapter](),
		logger:   logger,
	}
}

// NewAdapter creates an adapter and registers it under id
func (m *Manager) NewAdapter(id string) (*Adapter, error) {
	a := NewAdapter(id, m.logger)
	if err := m.AddAdapter(a); err != nil {
		return nil, err
	}
	return a, nil
}

// AddAdapter registers a under its current identifier
func (m *Manager) AddAdapter(a *Adapter) error {
	id := a.ID()
	if !m.adapters.Insert(id, a) {
		return fmt.Errorf("%w: %q", ErrDuplicateAdapter, id)
	}
	m.logger.WithField("adapter", id).Debug("Adapter registered")
	return nil
}

// RemoveAdapter forgets the adapter registered under id
func (m *Manager) RemoveAdapter(id string) bool {
	return m.adapters.Del(id)
}

// Adapter returns the adapter registered under id
func (m *Manager) Adapter(id string) (*Adapter, error) {
	a, ok := m.adapters.Get(id)
	if !ok {
		return nil, &NotFoundError{Resource: "adapter", ID: id}
	}
	return a, nil
}

// Adapters returns a snapshot of registered adapters ordered by registration key
func (m *Manager) Adapters() []*Adapter {
	keys := make([]string, 0, m.adapters.Len())
	byKey := make(map[string]*Adapter, m.adapters.Len())
	m.adapters.Range(func(key string, value *Adapter) bool {
		keys = append(keys, key)
		byKey[key] = value
		return true
	})
	sort.Strings(keys)

	out := make([]*Adapter, 0, len(keys))
	for _, k := range keys {
		out = append(out, byKey[k])
	}
	return out
}

// DefaultAdapter returns the adapter with the lowest registration key
func (m *Manager) DefaultAdapter() (*Adapter, error) {
	adapters := m.Adapters()
	if len(adapters) == 0 {
		return nil, &NotFoundError{Resource: "adapter"}
	}
	return adapters[0], nil
}
