// Package app contains the application shell: it links the plugin modules
// into the binary, loads plugin configuration, builds the registry Context
// and runs the entity demo on top of it, decoupled from any entrypoint like
// a CLI.
package app
