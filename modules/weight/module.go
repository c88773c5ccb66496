// Package weight contributes the "Weight" property plugin.
package weight

import (
	"fmt"

	"github.com/vk/propgrid/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

const (
	Name = "Weight"
	// DefaultPounds is used when no default is configured.
	DefaultPounds = 140
)

var plugin *registry.Descriptor

func init() {
	plugin = &registry.Descriptor{
		Name:        Name,
		Description: "Weight of the person in lbs",
		Required:    true,
		Enabled:     true,
		Initializer: initialWeight,
		Constructor: construct,
	}
	registry.Register(plugin)
}

// Descriptor returns the registered Weight descriptor.
func Descriptor() *registry.Descriptor {
	return plugin
}

func construct(c *registry.Context) {
	if !c.Enabled(plugin) {
		panic(fmt.Errorf("plugin %q is required and cannot be disabled", Name))
	}
	lbs, err := c.Settings(Name).Int("default", DefaultPounds)
	if err != nil {
		panic(err)
	}
	if lbs <= 0 {
		panic(fmt.Errorf("plugin %q: default must be positive, got %d", Name, lbs))
	}
	c.RegisterPlugin(plugin)
}

func initialWeight(c *registry.Context, _ registry.EntityID) cty.Value {
	lbs, err := c.Settings(Name).Int("default", DefaultPounds)
	if err != nil {
		lbs = DefaultPounds
	}
	return cty.NumberIntVal(lbs)
}
