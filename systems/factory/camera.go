package factory

import (
	"github.com/automoto/tidewalker/archetypes"
	"github.com/automoto/tidewalker/components"
	"github.com/yohamta/donburi"
)

// CreateCamera spawns the camera centered on (x, y).
func CreateCamera(w donburi.World, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	data := components.CameraData{}
	data.Position.X, data.Position.Y = x, y
	components.Camera.SetValue(camera, data)
	return camera
}
