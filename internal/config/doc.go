// Package config defines the format-agnostic plugin configuration model
// and the Loader interface that produces it.
//
// A Model is read before a registry.Context is built and handed to it with
// registry.WithConfig, so plugin constructors can validate their settings
// during construction. The HCL implementation lives in the hcl package.
package config
