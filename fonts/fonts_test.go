package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())
	assert.NotNil(t, Regular.Get())
	assert.NotNil(t, Small.Get())
	assert.Greater(t, Regular.Get().Metrics().Height, Small.Get().Metrics().Height)
}

func TestLoadRejectsGarbage(t *testing.T) {
	assert.Error(t, LoadFontWithSize("bad", []byte("not a font"), 10))
}

func TestMissingFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}
