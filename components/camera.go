package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the view center in world pixels.
type CameraData struct {
	Position   math.Vec2
	LookAheadX float64 // Current smoothed X offset for look-ahead
}

var Camera = donburi.NewComponentType[CameraData]()

// ScreenShakeData is attached to the camera while a shake plays.
type ScreenShakeData struct {
	Intensity float64 // pixels
	Duration  int     // frames
	Elapsed   int
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
