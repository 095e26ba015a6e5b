package systems

import (
	"math"
	"time"

	"github.com/automoto/tidewalker/components"
	cfg "github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/shared/gamemath"
	"github.com/automoto/tidewalker/shared/locomotion"
	"github.com/automoto/tidewalker/tags"
	"github.com/yohamta/donburi"
)

// UpdatePlayer applies mode-specific movement and resolves action requests.
func UpdatePlayer(w donburi.World) {
	t := now(w)
	dt := deltaSeconds(w)
	tags.Player.Each(w, func(e *donburi.Entry) {
		updateSinglePlayer(e, t, dt)
	})
}

func updateSinglePlayer(e *donburi.Entry, t time.Duration, dt float64) {
	input := components.Input.Get(e)
	player := components.Player.Get(e)
	physics := components.Physics.Get(e)
	loco := components.Locomotion.Get(e)

	if !loco.State.Crouching {
		tryStandUp(components.Object.Get(e).Object, player)
	}

	// Input is ignored until the body settles after a relocation, and
	// while a knockback plays out.
	if loco.State.Relocating || loco.State.Staggered {
		player.Pose = derivePose(loco.State, physics)
		return
	}

	axis := horizontalAxis(input)
	if axis != 0 {
		player.Direction.X = axis
	}

	switch loco.State.Mode {
	case locomotion.Grounded:
		handleCrouch(e, input)
		handleGroundMovement(input, physics, loco)
		handleJumpInput(e, input, t)
	case locomotion.Swimming:
		physics.SpeedX = axis * cfg.Swim.HorizontalSpeed
		handleImpulse(e, input, t)
	case locomotion.Climbing:
		physics.SpeedX = axis * cfg.Climb.HorizontalSpeed
		physics.SpeedY = verticalAxis(input) * cfg.Climb.Speed
	case locomotion.Ghost:
		if axis != 0 {
			physics.SpeedX = gamemath.Approach(physics.SpeedX, axis*cfg.Ghost.HorizontalSpeed, cfg.Ghost.HorizontalResponse, dt)
		}
		handleImpulse(e, input, t)
	}

	handleThrowInput(e, input, t)
	handleBlowInput(e, input, t)

	player.Pose = derivePose(loco.State, physics)
}

func handleCrouch(e *donburi.Entry, input *components.InputData) {
	loco := components.Locomotion.Get(e)
	physics := components.Physics.Get(e)
	player := components.Player.Get(e)
	obj := components.Object.Get(e).Object
	crouchAction := GetAction(input, cfg.ActionCrouch)

	if !loco.State.Crouching {
		if crouchAction.Pressed && physics.Grounded() {
			loco.State = locomotion.Apply(loco.State, locomotion.CrouchStart)
			reduceHitboxForCrouch(obj)
		}
		return
	}

	if crouchAction.Pressed {
		return
	}
	// Try to stand up (may push player horizontally if partially blocked)
	if tryStandUp(obj, player) {
		loco.State = locomotion.Apply(loco.State, locomotion.CrouchEnd)
	}
}

func handleGroundMovement(input *components.InputData, physics *components.PhysicsData, loco *components.LocomotionData) {
	speed := cfg.Player.RunSpeed
	if loco.State.Crouching {
		speed *= cfg.Player.CrouchSpeedFactor
	}
	physics.SpeedX = horizontalAxis(input) * speed
}

func handleJumpInput(e *donburi.Entry, input *components.InputData, t time.Duration) {
	loco := components.Locomotion.Get(e)
	physics := components.Physics.Get(e)

	if !GetAction(input, cfg.ActionJump).Pressed || loco.State.Crouching {
		return
	}
	if !physics.Grounded() || !loco.Cooldowns.Jump.Ready(t, cfg.Actions.JumpCooldown) {
		return
	}

	physics.SpeedY = -cfg.Player.JumpSpeed
	loco.Cooldowns.Jump.Mark(t)
	emitAt(e, components.EventJumped)
}

// handleImpulse applies one discrete upward flap for swimming and ghost
// flight. Ghost flaps also spend the jump budget.
func handleImpulse(e *donburi.Entry, input *components.InputData, t time.Duration) {
	if !flapPressed(input) {
		return
	}
	loco := components.Locomotion.Get(e)
	physics := components.Physics.Get(e)
	env := cfg.Envelopes().For(loco.State.Mode)

	if !loco.Cooldowns.Impulse.Ready(t, env.ImpulseInterval) {
		return
	}
	if loco.State.IsGhost() {
		if loco.State.GhostJumps <= 0 {
			return
		}
		loco.State = locomotion.Apply(loco.State, locomotion.GhostImpulse)
	}

	physics.SpeedY = -env.Impulse
	loco.Cooldowns.Impulse.Mark(t)
	emitAt(e, components.EventImpulse)
}

func derivePose(s locomotion.State, physics *components.PhysicsData) components.Pose {
	// Timed actions own the pose until their lock clears.
	switch {
	case s.Throwing:
		return components.PoseThrow
	case s.Blowing:
		return components.PoseBlow
	}

	switch s.Mode {
	case locomotion.Swimming:
		return components.PoseSwim
	case locomotion.Climbing:
		return components.PoseClimb
	case locomotion.Ghost:
		return components.PoseGhost
	}

	switch {
	case s.Crouching:
		return components.PoseCrouch
	case !physics.Grounded() && physics.SpeedY < 0:
		return components.PoseJump
	case !physics.Grounded():
		return components.PoseFall
	case math.Abs(physics.SpeedX) > cfg.Actions.StationaryEpsilon:
		return components.PoseRun
	}
	return components.PoseIdle
}

// emitAt queues an event stamped with the body's position.
func emitAt(e *donburi.Entry, kind components.EventKind) {
	obj := components.Object.Get(e).Object
	components.Events.Get(e).Emit(components.Event{Kind: kind, X: obj.X, Y: obj.Y})
}
