package systems

import (
	"math"

	"github.com/automoto/tidewalker/components"
	"github.com/automoto/tidewalker/config"
	"github.com/yohamta/donburi"
)

// UpdateCamera follows the first player with a horizontal look-ahead,
// clamped so the level fills the screen.
func UpdateCamera(w donburi.World) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	p, ok := FirstPlayer(w)
	if !ok {
		return
	}
	playerObject := components.Object.Get(p.Entry()).Object
	playerData := components.Player.Get(p.Entry())
	physics := components.Physics.Get(p.Entry())

	if math.Abs(physics.SpeedX) > config.Camera.LookAheadSpeedThreshold {
		targetLookAhead := playerData.Direction.X * config.Camera.LookAheadDistanceX
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	targetX := playerObject.X + playerObject.W/2 + camera.LookAheadX
	targetY := playerObject.Y + playerObject.H/2
	if ld, ok := levelOf(w); ok && ld.CurrentLevel != nil {
		targetX = clampView(targetX, float64(config.C.Width), float64(ld.CurrentLevel.MapWidth))
		targetY = clampView(targetY, float64(config.C.Height), float64(ld.CurrentLevel.MapHeight))
	}

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing

	updateScreenShake(cameraEntry, camera)
}

// clampView keeps a view of size view centered inside [0, extent]. Levels
// smaller than the view are centered.
func clampView(center, view, extent float64) float64 {
	if extent <= view {
		return extent / 2
	}
	return math.Max(view/2, math.Min(extent-view/2, center))
}

// updateScreenShake applies screen shake offset to camera and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	camera.Position.X += math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.Position.Y += math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake, keeping a stronger one that is
// already playing.
func TriggerScreenShake(w donburi.World, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok || duration <= 0 {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}
	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.SetValue(cameraEntry, components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}
