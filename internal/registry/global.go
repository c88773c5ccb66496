package registry

// process is the registry every linked plugin module registers into.
var process = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return process
}

// Register adds d to the process-wide registry. Plugin modules call it from
// their init function.
func Register(d *Descriptor) {
	process.Register(d)
}
