package tileprops

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildResolvesFlags(t *testing.T) {
	idx := Build(RawTable{
		1: {{Name: Solid, Type: "bool", Value: "true"}},
		2: {{Name: Submersible, Type: "bool", Value: "true"}, {Name: Hazardous, Value: "1"}},
		3: {{Name: Climbable, Type: "bool", Value: "false"}},
		4: {{Name: SpawnPoint, Type: "int", Value: "2"}},
	})
	require.Equal(t, 4, idx.Len())

	cases := []struct {
		name string
		id   uint32
		prop string
		want bool
	}{
		{"solid_bool", 1, Solid, true},
		{"solid_not_submersible", 1, Submersible, false},
		{"water", 2, Submersible, true},
		{"untyped_truthy", 2, Hazardous, true},
		{"explicit_false", 3, Climbable, false},
		{"int_nonzero", 4, SpawnPoint, true},
		{"unknown_id", 99, Solid, false},
		{"empty_tile", 0, Solid, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, idx.HasProperty(c.id, c.prop))
		})
	}
}

func TestBuildMalformedEntriesDegradeToAbsent(t *testing.T) {
	idx := Build(RawTable{
		7: {
			{Name: Solid, Type: "bool", Value: "maybe"},
			{Name: "", Type: "bool", Value: "true"},
			{Name: Climbable, Type: "int", Value: "ladder"},
			{Name: Submersible, Type: "float", Value: "0.0"},
		},
		8: nil,
	})

	assert.False(t, idx.HasProperty(7, Solid))
	assert.False(t, idx.HasProperty(7, Climbable))
	assert.False(t, idx.HasProperty(7, Submersible))
	assert.False(t, idx.HasProperty(8, Solid))

	v, ok := idx.Value(7, Climbable)
	require.True(t, ok)
	assert.Equal(t, "ladder", v)
}

func TestNilIndexIsEmpty(t *testing.T) {
	var idx *Index
	assert.False(t, idx.HasProperty(1, Solid))
	assert.Equal(t, 0, idx.Len())
	_, ok := idx.Value(1, Solid)
	assert.False(t, ok)
	assert.False(t, idx.Definition(1).Has(Solid))
}

func TestRebuildDoesNotShareState(t *testing.T) {
	raw := RawTable{1: {{Name: Solid, Type: "bool", Value: "true"}}}
	first := Build(raw)
	raw[1] = []RawProperty{{Name: Submersible, Type: "bool", Value: "true"}}
	second := Build(raw)

	assert.True(t, first.HasProperty(1, Solid))
	assert.False(t, first.HasProperty(1, Submersible))
	assert.True(t, second.HasProperty(1, Submersible))
}
