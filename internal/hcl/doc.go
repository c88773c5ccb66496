// Package hcl provides the HCL implementation of config.Loader. It parses
// plugin configuration files, evaluates every setting into a cty.Value and
// merges the result into a single config.Model.
package hcl
