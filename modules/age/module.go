// Package age contributes the "Age" property plugin. Linking the package
// into a binary is enough to make the plugin part of every Context.
package age

import (
	"fmt"

	"github.com/vk/propgrid/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

// Name is the plugin name under which Age is registered and configured.
const Name = "Age"

// DefaultYears is the age assigned to new entities when the configuration
// does not set one.
const DefaultYears = 42

var plugin *registry.Descriptor

func init() {
	plugin = &registry.Descriptor{
		Name:        Name,
		Description: "Age of the person",
		Required:    true,
		Enabled:     true,
		Initializer: initialAge,
		Constructor: construct,
	}
	registry.Register(plugin)
}

// Descriptor returns the registered Age descriptor.
func Descriptor() *registry.Descriptor {
	return plugin
}

// construct validates the configuration and records the plugin. Age is
// required, so disabling it is a configuration error.
func construct(c *registry.Context) {
	if !c.Enabled(plugin) {
		panic(fmt.Errorf("plugin %q is required and cannot be disabled", Name))
	}
	years, err := defaultYears(c)
	if err != nil {
		panic(err)
	}
	if years < 0 {
		panic(fmt.Errorf("plugin %q: default must not be negative, got %d", Name, years))
	}
	c.Logger().Debug("Age plugin initialized.", "default", years)
	c.RegisterPlugin(plugin)
}

func initialAge(c *registry.Context, _ registry.EntityID) cty.Value {
	years, err := defaultYears(c)
	if err != nil {
		years = DefaultYears
	}
	return cty.NumberIntVal(years)
}

func defaultYears(c *registry.Context) (int64, error) {
	return c.Settings(Name).Int("default", DefaultYears)
}
