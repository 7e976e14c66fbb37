package registry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/spool/pkg/domain"
	"github.com/aretw0/spool/pkg/registry"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := registry.New()

	m := &domain.Machine{Name: "noop"}
	require.NoError(t, reg.Register(m))

	got, err := reg.Get("noop")
	require.NoError(t, err)
	assert.Same(t, m, got)
}

func TestRegistry_GetMissing(t *testing.T) {
	reg := registry.New()

	_, err := reg.Get("ghost")
	assert.True(t, errors.Is(err, domain.ErrMachineNotFound))
}

func TestRegistry_RejectsUnnamed(t *testing.T) {
	reg := registry.New()

	assert.Error(t, reg.Register(nil))
	assert.Error(t, reg.Register(&domain.Machine{}))
}

func TestRegistry_NamesSorted(t *testing.T) {
	reg := registry.New()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, reg.Register(&domain.Machine{Name: name}))
	}

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, reg.Names())
}
