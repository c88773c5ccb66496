package hcl

import (
	"fmt"

	"github.com/vk/propgrid/internal/config"
	"github.com/vk/propgrid/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// translatePlugin converts a decoded plugin block into the agnostic model,
// evaluating every remaining attribute without variables or functions.
func translatePlugin(s *schema.Plugin, source string) (*config.Plugin, error) {
	p := &config.Plugin{
		Name:       s.Name,
		Enabled:    s.Enabled,
		Attributes: make(map[string]cty.Value),
		Source:     source,
	}
	if s.Body == nil {
		return p, nil
	}

	attrs, diags := s.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid body for plugin '%s' in %s: %w", s.Name, source, diags)
	}
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("invalid value for setting '%s' of plugin '%s' in %s: %w", name, s.Name, source, diags)
		}
		p.Attributes[name] = val
	}
	return p, nil
}
