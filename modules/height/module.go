// Package height contributes the optional "Height" property plugin. It is
// opt-in: the plugin only records itself when the configuration enables it.
package height

import (
	"fmt"

	"github.com/vk/propgrid/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

const (
	Name = "Height"
	// DefaultCentimeters is used when no default is configured.
	DefaultCentimeters = 170
)

var plugin *registry.Descriptor

func init() {
	plugin = &registry.Descriptor{
		Name:        Name,
		Description: "Height of the person in cm",
		Required:    false,
		Enabled:     false,
		Initializer: initialHeight,
		Constructor: construct,
	}
	registry.Register(plugin)
}

// Descriptor returns the registered Height descriptor.
func Descriptor() *registry.Descriptor {
	return plugin
}

func construct(c *registry.Context) {
	if !c.Enabled(plugin) {
		c.Logger().Debug("Height plugin not enabled, skipping.")
		return
	}
	cm, err := c.Settings(Name).Int("default", DefaultCentimeters)
	if err != nil {
		panic(err)
	}
	if cm <= 0 {
		panic(fmt.Errorf("plugin %q: default must be positive, got %d", Name, cm))
	}
	c.RegisterPlugin(plugin)
}

func initialHeight(c *registry.Context, _ registry.EntityID) cty.Value {
	cm, err := c.Settings(Name).Int("default", DefaultCentimeters)
	if err != nil {
		cm = DefaultCentimeters
	}
	return cty.NumberIntVal(cm)
}
