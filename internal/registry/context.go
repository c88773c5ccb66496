package registry

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/vk/propgrid/internal/config"
	"github.com/zclconf/go-cty/cty"
)

// State is the construction phase of a Context.
type State int

const (
	StateUninitialized State = iota
	StateInitializing
	StateReady
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Context is the per-run object produced by one pass over a registry. It is
// owned by the caller that built it and is not safe for concurrent
// mutation; it is only mutated while New is running.
type Context struct {
	registry *Registry
	logger   *slog.Logger
	config   *config.Model
	sorted   bool
	unique   bool

	state      State
	current    *Descriptor
	plugins    []string
	registered []*Descriptor
}

// New builds a Context from the registry (the process registry unless
// WithRegistry is given) and returns it in the Ready state.
//
// A constructor that wants to reject its configuration panics; New does not
// recover, so the failure aborts the whole construction. Use TryNew to get
// the failure back as an error instead.
func New(opts ...Option) *Context {
	c := newContext(opts)
	c.initialize()
	return c
}

// TryNew is New with construction failures returned as errors. On failure
// no context is returned.
func TryNew(opts ...Option) (_ *Context, err error) {
	c := newContext(opts)
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if dup, ok := r.(*DuplicateNameError); ok {
			err = dup
			return
		}
		cerr := &ConstructionError{Value: r}
		if c.current != nil {
			cerr.Plugin = c.current.Name
		}
		err = cerr
	}()
	c.initialize()
	return c, nil
}

func newContext(opts []Option) *Context {
	c := &Context{
		registry: Default(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Context) initialize() {
	c.registry.Seal()

	if c.unique {
		if err := c.registry.CheckUnique(); err != nil {
			c.logger.Error("Duplicate plugin names declared.", "error", err)
			panic(err)
		}
	}

	descriptors := c.registry.All()
	if c.sorted {
		ordered := slices.Collect(descriptors)
		slices.SortStableFunc(ordered, func(a, b *Descriptor) int {
			return strings.Compare(a.Name, b.Name)
		})
		descriptors = slices.Values(ordered)
	}

	c.state = StateInitializing
	c.logger.Debug("Initializing context.", "declared", c.registry.Len(), "sorted", c.sorted)

	for d := range descriptors {
		c.current = d
		c.logger.Debug("Running plugin constructor.", "plugin", d.Name)
		d.Init(c)
	}
	c.current = nil

	// Dependency constraints between plugins would be validated here, once
	// every constructor has run.

	c.state = StateReady
	c.logger.Debug("Context ready.", "plugins", len(c.plugins))
}

// RegisterPlugin records that d was initialized in this context. Calling it
// twice with the same descriptor records it twice. It panics when called
// outside of construction.
func (c *Context) RegisterPlugin(d *Descriptor) {
	if c.state != StateInitializing {
		panic(ErrNotInitializing)
	}
	c.plugins = append(c.plugins, d.Name)
	c.registered = append(c.registered, d)
}

// Plugins returns the names recorded by RegisterPlugin, in the order they
// were recorded. That order follows registry iteration and is not stable
// across builds unless WithSortedOrder was used.
func (c *Context) Plugins() []string {
	return slices.Clone(c.plugins)
}

// Registered returns the descriptors recorded by RegisterPlugin.
func (c *Context) Registered() []*Descriptor {
	return slices.Clone(c.registered)
}

// State returns the construction phase.
func (c *Context) State() State {
	return c.state
}

// Logger returns the logger constructors should log through.
func (c *Context) Logger() *slog.Logger {
	return c.logger
}

// Settings returns the configuration block for the named plugin, or nil.
func (c *Context) Settings(name string) *config.Plugin {
	return c.config.Plugin(name)
}

// Setting returns one configured attribute of the named plugin.
func (c *Context) Setting(name, key string) (cty.Value, bool) {
	return c.Settings(name).Attribute(key)
}

// Enabled reports whether d is active in this context: the configured
// enabled attribute when present, the declared flag otherwise.
func (c *Context) Enabled(d *Descriptor) bool {
	if p := c.Settings(d.Name); p != nil && p.Enabled != nil {
		return *p.Enabled
	}
	return d.Enabled
}

// Missing returns the declared descriptors that are required and enabled
// but never registered themselves. It is a report; nothing in the core
// acts on it.
func (c *Context) Missing() []*Descriptor {
	seen := make(map[string]struct{}, len(c.plugins))
	for _, name := range c.plugins {
		seen[name] = struct{}{}
	}

	var missing []*Descriptor
	for d := range c.registry.All() {
		if !d.Required || !c.Enabled(d) {
			continue
		}
		if _, ok := seen[d.Name]; !ok {
			missing = append(missing, d)
		}
	}
	return missing
}
