// Package entitystore is a thread-safe, in-memory store of per-entity
// property values. It is the consumer of plugin initializers: creating an
// entity calls the initializer of every plugin that registered itself in the
// registry.Context and keeps the returned values.
//
// The store is ephemeral and sized for a single run. Persistent storage or
// other value strategies (compute on access, on write) belong to other
// implementations.
package entitystore
