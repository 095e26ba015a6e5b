package assets

import (
	"testing"

	"github.com/automoto/tidewalker/shared/leveldata"
	"github.com/automoto/tidewalker/shared/tileprops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundledLevelsLoad(t *testing.T) {
	levels, names, err := leveldata.LoadAll(Levels(), LevelsDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"lagoon", "reef"}, names)

	for _, name := range names {
		level := levels[name]
		require.NotNil(t, level.Layer("surface"), name)
		assert.NotEmpty(t, level.SpawnPoints, name)
		assert.NotNil(t, level.SafePoint, name)
		assert.Equal(t, 16, level.TileWidth, name)

		idx := tileprops.Build(level.Tiles)
		assert.Equal(t, 6, idx.Len(), name)
		assert.True(t, idx.HasProperty(1, tileprops.Solid), name)
		assert.True(t, idx.HasProperty(2, tileprops.Submersible), name)
	}
}
