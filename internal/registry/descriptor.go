package registry

import (
	"errors"
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// EntityID identifies one entity (for example a person) whose properties
// are described by plugins.
type EntityID uint64

// InitializerFunc computes the first value of a plugin's property for one
// entity.
type InitializerFunc func(c *Context, id EntityID) cty.Value

// ConstructorFunc is run exactly once per Context construction.
type ConstructorFunc func(c *Context)

// Descriptor is the static declaration a plugin module contributes to the
// registry. It must not be modified after it has been registered.
type Descriptor struct {
	// Name identifies the plugin. Uniqueness is a convention, see
	// Registry.CheckUnique.
	Name        string
	Description string
	// Required means every entity should have a value for this property.
	Required bool
	// Enabled means the property is active unless configuration says
	// otherwise.
	Enabled bool
	// Initializer is never called by the core; entity management code
	// calls it through InitialValue.
	Initializer InitializerFunc
	Constructor ConstructorFunc
}

// Init runs the descriptor's constructor against c. It is the only entry
// point the core invokes on a descriptor.
func (d *Descriptor) Init(c *Context) {
	d.Constructor(c)
}

// IsRequired reports the advisory required flag.
func (d *Descriptor) IsRequired() bool { return d.Required }

// IsEnabled reports the advisory enabled flag as declared. Use
// Context.Enabled to take configuration overrides into account.
func (d *Descriptor) IsEnabled() bool { return d.Enabled }

// InitialValue returns the value the initializer computes for id. A
// descriptor without an initializer yields a dynamically typed null.
func (d *Descriptor) InitialValue(c *Context, id EntityID) cty.Value {
	if d.Initializer == nil {
		return cty.NullVal(cty.DynamicPseudoType)
	}
	return d.Initializer(c, id)
}

func (d *Descriptor) String() string {
	return fmt.Sprintf("plugin %q (required=%t, enabled=%t)", d.Name, d.Required, d.Enabled)
}

// validate reports declaration mistakes that make a descriptor unusable.
func (d *Descriptor) validate() error {
	if d.Name == "" {
		return errors.New("descriptor has an empty name")
	}
	if d.Constructor == nil {
		return fmt.Errorf("descriptor %q has no constructor", d.Name)
	}
	return nil
}
