package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterRejectsMalformedDescriptors(t *testing.T) {
	r := NewRegistry()

	assert.Panics(t, func() { r.Register(nil) }, "nil descriptor")
	assert.Panics(t, func() { r.Register(&Descriptor{Constructor: func(*Context) {}}) }, "empty name")
	assert.Panics(t, func() { r.Register(&Descriptor{Name: "Age"}) }, "nil constructor")
	assert.Zero(t, r.Len())
}

func TestRegistry_AllIsRestartable(t *testing.T) {
	r := registryOf(selfRegistering("Age"), selfRegistering("Weight"))

	var first, second []string
	for d := range r.All() {
		first = append(first, d.Name)
	}
	for d := range r.All() {
		second = append(second, d.Name)
	}

	assert.ElementsMatch(t, []string{"Age", "Weight"}, first)
	assert.ElementsMatch(t, first, second)
	assert.Equal(t, 2, r.Len())
	assert.ElementsMatch(t, []string{"Age", "Weight"}, r.Names())
}

func TestRegistry_AllStopsEarly(t *testing.T) {
	r := registryOf(selfRegistering("Age"), selfRegistering("Weight"), selfRegistering("Height"))

	seen := 0
	for range r.All() {
		seen++
		break
	}

	assert.Equal(t, 1, seen)
}

func TestRegistry_RegisterAfterSealPanics(t *testing.T) {
	r := registryOf(selfRegistering("Age"))
	New(WithRegistry(r), WithLogger(quietLogger()))

	require.True(t, r.Sealed())
	assert.PanicsWithError(t, `registry: cannot register plugin "Weight": registry is sealed`, func() {
		r.Register(selfRegistering("Weight"))
	})
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_CheckUnique(t *testing.T) {
	assert.NoError(t, registryOf(selfRegistering("Age"), selfRegistering("Weight")).CheckUnique())
	assert.NoError(t, NewRegistry().CheckUnique())

	err := registryOf(
		selfRegistering("Age"),
		selfRegistering("Age"),
		selfRegistering("Weight"),
		selfRegistering("Weight"),
		selfRegistering("Weight"),
		selfRegistering("Height"),
	).CheckUnique()

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateName))
	var dup *DuplicateNameError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, map[string]int{"Age": 2, "Weight": 3}, dup.Counts)
	assert.Equal(t, `duplicate plugin name: "Age" x2, "Weight" x3`, err.Error())
}
