// Package schema holds the HCL decoding structs for plugin configuration
// files. They mirror the file syntax; the hcl package translates them into
// the format-agnostic config model.
package schema

import "github.com/hashicorp/hcl/v2"

// Plugin represents a `plugin "<name>" { ... }` block. Every attribute other
// than `enabled` is left in Body and becomes a plugin setting.
type Plugin struct {
	Name    string   `hcl:"name,label"`
	Enabled *bool    `hcl:"enabled,optional"`
	Body    hcl.Body `hcl:",remain"`
}

// File is the top-level structure of a plugin configuration file.
type File struct {
	Plugins []*Plugin `hcl:"plugin,block"`
}
