package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrDuplicateName is matched by every *DuplicateNameError.
	ErrDuplicateName = errors.New("duplicate plugin name")
	// ErrSealed is raised when a descriptor is registered after the first
	// Context was built from the registry.
	ErrSealed = errors.New("registry is sealed")
	// ErrNotInitializing is raised when RegisterPlugin is called outside
	// of Context construction.
	ErrNotInitializing = errors.New("context is not initializing")
)

// DuplicateNameError lists every plugin name declared more than once,
// together with how many descriptors share it.
type DuplicateNameError struct {
	Counts map[string]int
}

func (e *DuplicateNameError) Error() string {
	names := make([]string, 0, len(e.Counts))
	for name := range e.Counts {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%q x%d", name, e.Counts[name]))
	}
	return fmt.Sprintf("%s: %s", ErrDuplicateName, strings.Join(parts, ", "))
}

func (e *DuplicateNameError) Is(target error) bool {
	return target == ErrDuplicateName
}

// ConstructionError is returned by TryNew when a constructor aborts the
// construction by panicking.
type ConstructionError struct {
	// Plugin is the name of the descriptor whose constructor was running,
	// empty if the failure happened outside of any constructor.
	Plugin string
	// Value is the recovered panic value.
	Value any
}

func (e *ConstructionError) Error() string {
	if e.Plugin == "" {
		return fmt.Sprintf("context construction failed: %v", e.Value)
	}
	return fmt.Sprintf("context construction failed in plugin %q: %v", e.Plugin, e.Value)
}

// Unwrap exposes the panic value when it is an error.
func (e *ConstructionError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
