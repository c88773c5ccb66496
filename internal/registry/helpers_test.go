package registry

import (
	"io"
	"log/slog"
)

// quietLogger keeps constructor logging out of test output.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// selfRegistering returns a descriptor whose constructor records itself,
// the way every well-behaved plugin module does.
func selfRegistering(name string) *Descriptor {
	d := &Descriptor{Name: name, Description: name + " of the person", Required: true, Enabled: true}
	d.Constructor = func(c *Context) { c.RegisterPlugin(d) }
	return d
}

// silent returns a descriptor whose constructor never registers itself.
func silent(name string) *Descriptor {
	return &Descriptor{Name: name, Required: true, Enabled: true, Constructor: func(*Context) {}}
}

func registryOf(descriptors ...*Descriptor) *Registry {
	r := NewRegistry()
	for _, d := range descriptors {
		r.Register(d)
	}
	return r
}
