package registry

import (
	"fmt"
	"iter"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Registry is an append-only collection of descriptors. It accepts
// registrations until the first Context is built from it and is read-only
// afterwards.
type Registry struct {
	mu      sync.Mutex
	entries []*Descriptor
	sealed  atomic.Bool
}

// NewRegistry creates an empty registry. Production code uses the process
// registry returned by Default; separate registries exist for tests and
// embedding.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends d. It panics if d is malformed or the registry has
// already been sealed, since both are programmer errors that must stop the
// process during startup.
func (r *Registry) Register(d *Descriptor) {
	if d == nil {
		panic("registry: cannot register a nil descriptor")
	}
	if err := d.validate(); err != nil {
		panic(fmt.Sprintf("registry: %v", err))
	}
	if r.sealed.Load() {
		panic(fmt.Errorf("registry: cannot register plugin %q: %w", d.Name, ErrSealed))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	slog.Debug("Registering plugin descriptor.", "name", d.Name)
	r.entries = append(r.entries, d)
}

// Seal freezes the registry. Calling it more than once has no effect.
func (r *Registry) Seal() {
	r.sealed.Store(true)
}

// Sealed reports whether the registry still accepts registrations.
func (r *Registry) Sealed() bool {
	return r.sealed.Load()
}

// All returns every registered descriptor. The sequence can be walked any
// number of times; its order is unspecified and callers must not depend on
// it.
func (r *Registry) All() iter.Seq[*Descriptor] {
	return func(yield func(*Descriptor) bool) {
		for _, d := range r.snapshot() {
			if !yield(d) {
				return
			}
		}
	}
}

// Len returns the number of registered descriptors, duplicates included.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Names returns the declared plugin names, duplicates included, in
// unspecified order.
func (r *Registry) Names() []string {
	entries := r.snapshot()
	names := make([]string, 0, len(entries))
	for _, d := range entries {
		names = append(names, d.Name)
	}
	return names
}

func (r *Registry) snapshot() []*Descriptor {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Descriptor, len(r.entries))
	copy(out, r.entries)
	return out
}
