// Package registry is the load-time glue between the core and every plugin
// module compiled into the binary.
//
// Each plugin module declares one Descriptor and hands it to Register from
// its init function. Go runs those init functions before main, so by the
// time the host builds a Context the process-wide registry already holds
// every linked descriptor, without any package enumerating the others.
//
// A Context is built by a single call to New. The call seals the registry,
// walks it once and invokes each descriptor's Constructor. Constructors are
// expected to call Context.RegisterPlugin for themselves; the resulting name
// list is what Context.Plugins reports.
//
// Iteration order over the registry is unspecified. No constructor may rely
// on another plugin having run before it. WithSortedOrder makes the order
// deterministic for callers that opt in.
//
// The Required and Enabled flags are advisory. The core stores them and
// exposes them through IsRequired, IsEnabled and Context.Enabled, but it
// never acts on them; each plugin module enforces its own policy inside its
// constructor.
package registry
