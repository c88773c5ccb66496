package height

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/propgrid/internal/config"
	"github.com/vk/propgrid/internal/registry"
	"github.com/zclconf/go-cty/cty"
)

func build(t *testing.T, model *config.Model) *registry.Context {
	t.Helper()
	r := registry.NewRegistry()
	r.Register(Descriptor())
	c, err := registry.TryNew(
		registry.WithRegistry(r),
		registry.WithConfig(model),
		registry.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	require.NoError(t, err)
	return c
}

func TestHeight_OptInOnly(t *testing.T) {
	c := build(t, nil)

	assert.Empty(t, c.Plugins(), "a disabled plugin must not record itself")
	assert.Empty(t, c.Missing(), "optional plugins are never reported missing")
}

func TestHeight_EnabledByConfiguration(t *testing.T) {
	on := true
	model := config.NewModel()
	require.NoError(t, model.Add(&config.Plugin{
		Name:       Name,
		Enabled:    &on,
		Attributes: map[string]cty.Value{"default": cty.NumberIntVal(182)},
	}))

	c := build(t, model)

	assert.Equal(t, []string{Name}, c.Plugins())
	assert.True(t, Descriptor().InitialValue(c, 3).RawEquals(cty.NumberIntVal(182)))
}
