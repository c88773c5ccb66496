package entitystore

import (
	"errors"
	"fmt"
	"maps"
	"sync"

	"github.com/vk/propgrid/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

var (
	ErrEntityExists  = errors.New("entity already exists")
	ErrUnknownEntity = errors.New("unknown entity")
	// ErrRequiredValue is returned when a required plugin's initializer
	// produces a null value.
	ErrRequiredValue = errors.New("required property has no value")
)

// Store maps entity IDs to their property values, keyed by plugin name.
type Store struct {
	ctx *registry.Context

	mu       sync.RWMutex
	entities map[registry.EntityID]map[string]cty.Value
}

// New creates an empty store bound to a built context.
func New(c *registry.Context) *Store {
	return &Store{
		ctx:      c,
		entities: make(map[registry.EntityID]map[string]cty.Value),
	}
}

// Create adds id and assigns the initial value of every plugin registered
// in the context. When several descriptors share a name the first one
// wins. Nothing is stored if any required property comes back null.
func (s *Store) Create(id registry.EntityID) error {
	values := make(map[string]cty.Value)
	for _, d := range s.ctx.Registered() {
		if _, done := values[d.Name]; done {
			continue
		}
		v := d.InitialValue(s.ctx, id)
		if d.IsRequired() && v.IsNull() {
			return fmt.Errorf("entity %d, plugin %q: %w", id, d.Name, ErrRequiredValue)
		}
		values[d.Name] = v
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entities[id]; ok {
		return fmt.Errorf("entity %d: %w", id, ErrEntityExists)
	}
	s.entities[id] = values
	s.ctx.Logger().Debug("Entity created.", "entity", id, "properties", len(values))
	return nil
}

// Get returns one property of an entity.
func (s *Store) Get(id registry.EntityID, name string) (cty.Value, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entities[id][name]
	return v, ok
}

// Set overwrites one property of an existing entity.
func (s *Store) Set(id registry.EntityID, name string, v cty.Value) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	values, ok := s.entities[id]
	if !ok {
		return fmt.Errorf("entity %d: %w", id, ErrUnknownEntity)
	}
	values[name] = v
	return nil
}

// Values returns a copy of every property of an entity, or nil if the
// entity does not exist.
func (s *Store) Values(id registry.EntityID) map[string]cty.Value {
	s.mu.RLock()
	defer s.mu.RUnlock()
	values, ok := s.entities[id]
	if !ok {
		return nil
	}
	return maps.Clone(values)
}

// Len returns the number of entities.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}
