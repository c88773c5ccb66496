package config

import (
	"fmt"
	"sort"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Model is the merged plugin configuration of one run.
type Model struct {
	Plugins map[string]*Plugin
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{Plugins: make(map[string]*Plugin)}
}

// Add inserts p. A plugin may be configured only once across all sources.
func (m *Model) Add(p *Plugin) error {
	if existing, ok := m.Plugins[p.Name]; ok {
		return fmt.Errorf("plugin %q configured twice (%s and %s)", p.Name, existing.Source, p.Source)
	}
	m.Plugins[p.Name] = p
	return nil
}

// Plugin returns the configuration for name, or nil. It is safe to call on
// a nil Model.
func (m *Model) Plugin(name string) *Plugin {
	if m == nil {
		return nil
	}
	return m.Plugins[name]
}

// Names returns the configured plugin names, sorted.
func (m *Model) Names() []string {
	if m == nil {
		return nil
	}
	names := make([]string, 0, len(m.Plugins))
	for name := range m.Plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Plugin is the configuration of a single plugin.
type Plugin struct {
	Name string
	// Enabled overrides the descriptor's enabled flag when set.
	Enabled *bool
	// Attributes holds every other setting, already evaluated.
	Attributes map[string]cty.Value
	// Source names the file the block came from.
	Source string
}

// Attribute returns one setting. It is safe to call on a nil Plugin.
func (p *Plugin) Attribute(key string) (cty.Value, bool) {
	if p == nil {
		return cty.NilVal, false
	}
	v, ok := p.Attributes[key]
	return v, ok
}

// Int decodes an integer setting, returning fallback when the setting is
// absent or null. It is safe to call on a nil Plugin.
func (p *Plugin) Int(key string, fallback int64) (int64, error) {
	v, ok := p.Attribute(key)
	if !ok || v.IsNull() {
		return fallback, nil
	}
	var n int64
	if err := gocty.FromCtyValue(v, &n); err != nil {
		return 0, fmt.Errorf("plugin %q setting %q: %w", p.Name, key, err)
	}
	return n, nil
}
