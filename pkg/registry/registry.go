// Package registry manages named Machine definitions so that hosts (CLI,
// HTTP, MCP) can select machines without constructing them. Definitions
// are stored as-is and never mutated; the registry is safe for concurrent
// use.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/spool/pkg/domain"
)

// Registry manages the available machine definitions.
type Registry struct {
	mu       sync.RWMutex
	machines map[string]*domain.Machine
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{
		machines: make(map[string]*domain.Machine),
	}
}

// Register adds a machine under its Name. If a machine with the same
// name exists, it is overwritten.
func (r *Registry) Register(m *domain.Machine) error {
	if m == nil || m.Name == "" {
		return fmt.Errorf("machine must have a name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.machines[m.Name] = m
	return nil
}

// Get looks up a machine by name.
func (r *Registry) Get(name string) (*domain.Machine, error) {
	r.mu.RLock()
	m, ok := r.machines[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrMachineNotFound, name)
	}
	return m, nil
}

// Names returns the registered machine names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.machines))
	for name := range r.machines {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
