package systems

import (
	"github.com/automoto/tidewalker/components"
	"github.com/automoto/tidewalker/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdatePhysics integrates gravity and drag and applies the envelope caps.
// A staggered body keeps its full knockback speed on the horizontal axis.
func UpdatePhysics(w donburi.World) {
	dt := deltaSeconds(w)
	components.Physics.Each(w, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)

		physics.SpeedY += physics.Gravity * dt

		physics.SpeedX = gamemath.Damp(physics.SpeedX, physics.DragX, dt)
		physics.SpeedY = gamemath.Damp(physics.SpeedY, physics.DragY, dt)

		if !staggered(e) {
			physics.SpeedX = gamemath.ClampSpeed(physics.SpeedX, physics.MaxSpeedX)
		}
		physics.SpeedY = gamemath.ClampSpeed(physics.SpeedY, physics.MaxSpeedY)
	})
}

func staggered(e *donburi.Entry) bool {
	return e.HasComponent(components.Locomotion) && components.Locomotion.Get(e).State.Staggered
}
