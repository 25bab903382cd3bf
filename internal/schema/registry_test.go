package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	require.False(t, r.Has("navigate"))
	require.Nil(t, r.Get("navigate"))
	require.Empty(t, r.All())

	def := &CommandDefinition{Name: "navigate", Description: "x"}
	r.Register(def)

	require.True(t, r.Has("navigate"))
	require.Same(t, def, r.Get("navigate"))
}

func TestRegistryKeepsRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		r.Register(&CommandDefinition{Name: name})
	}

	var names []string
	for _, def := range r.All() {
		names = append(names, def.Name)
	}
	require.Equal(t, []string{"zeta", "alpha", "mid"}, names)
}

func TestRegistryLastRegistrationWins(t *testing.T) {
	r := NewRegistry()
	first := &CommandDefinition{Name: "eval", Description: "first"}
	second := &CommandDefinition{Name: "eval", Description: "second"}

	r.Register(first)
	r.Register(second)

	require.Same(t, second, r.Get("eval"))
	require.Len(t, r.All(), 1, "overwrite must not duplicate the entry")
}
