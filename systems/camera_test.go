package systems

import (
	"testing"

	"github.com/automoto/tidewalker/components"
	"github.com/automoto/tidewalker/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampView(t *testing.T) {
	assert.Equal(t, 50.0, clampView(10, 100, 400))
	assert.Equal(t, 350.0, clampView(390, 100, 400))
	assert.Equal(t, 200.0, clampView(200, 100, 400))
	assert.Equal(t, 40.0, clampView(10, 100, 80), "small levels are centered")
}

func TestCameraFollowsPlayer(t *testing.T) {
	w, p := newTestWorld(t, dryX, standY)
	camera := factory.CreateCamera(w, 0, 0)

	for i := 0; i < 200; i++ {
		frame(w, p)
		UpdateCamera(w)
	}
	pos := components.Camera.Get(camera).Position
	// The lagoon map is smaller than the screen, so the view centers on it.
	assert.InDelta(t, 10*tileSize, pos.X, 0.5)
	assert.InDelta(t, 5*tileSize, pos.Y, 0.5)
}

func TestScreenShakeExpires(t *testing.T) {
	w, p := newTestWorld(t, dryX, standY)
	camera := factory.CreateCamera(w, 0, 0)

	TriggerScreenShake(w, 4, 3)
	require.True(t, camera.HasComponent(components.ScreenShake))
	TriggerScreenShake(w, 2, 10)
	assert.Equal(t, 3, components.ScreenShake.Get(camera).Duration, "weaker shake is ignored")

	for i := 0; i < 3; i++ {
		frame(w, p)
		UpdateCamera(w)
	}
	assert.False(t, camera.HasComponent(components.ScreenShake))
}
