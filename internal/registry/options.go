package registry

import (
	"log/slog"

	"github.com/vk/propgrid/internal/config"
)

// Option configures a Context before construction starts.
type Option func(*Context)

// WithRegistry builds the context from r instead of the process registry.
func WithRegistry(r *Registry) Option {
	return func(c *Context) {
		c.registry = r
	}
}

// WithLogger sets the logger exposed to constructors.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Context) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithConfig exposes plugin configuration to constructors.
func WithConfig(m *config.Model) Option {
	return func(c *Context) {
		c.config = m
	}
}

// WithSortedOrder runs constructors sorted by plugin name instead of in
// registry order.
func WithSortedOrder() Option {
	return func(c *Context) {
		c.sorted = true
	}
}

// WithUniqueNames makes construction fail with a *DuplicateNameError when
// two descriptors share a name.
func WithUniqueNames() Option {
	return func(c *Context) {
		c.unique = true
	}
}
