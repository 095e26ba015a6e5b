package systems

import (
	"github.com/automoto/tidewalker/components"
	cfg "github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/shared/locomotion"
	"github.com/automoto/tidewalker/shared/tileprops"
	"github.com/automoto/tidewalker/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

// UpdateLocomotion samples the tiles around each player and moves its
// locomotion state through at most one round of mode transitions.
func UpdateLocomotion(w donburi.World) {
	level, _ := levelOf(w)
	tags.Player.Each(w, func(e *donburi.Entry) {
		updateLocomotion(w, level, e)
	})
}

func updateLocomotion(w donburi.World, level *components.LevelData, e *donburi.Entry) {
	loco := components.Locomotion.Get(e)
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e).Object

	grounded := physics.Grounded()
	if grounded {
		loco.State = locomotion.Apply(loco.State, locomotion.GroundContact)
		if !physics.WasOnGround {
			onLanded(e)
		}
	}

	sense := senseAt(level, obj)
	sense.Grounded = grounded
	input := components.Input.Get(e)
	intent := locomotion.Intent{
		Up:   GetAction(input, cfg.ActionMoveUp).Pressed,
		Down: GetAction(input, cfg.ActionCrouch).Pressed,
	}

	before := loco.State
	after, sigs := locomotion.Step(before, sense, intent)
	loco.State = after

	for _, sig := range sigs {
		if sig == locomotion.HazardContact {
			relocateFromHazard(w, e)
		}
	}
	if locomotion.Changed(before, after) {
		enterMode(e, before.Mode, after.Mode)
	}
}

// senseAt answers the per-frame tile questions at the body's center.
func senseAt(level *components.LevelData, obj *resolv.Object) locomotion.Sense {
	if level == nil || level.Surface == nil {
		return locomotion.Sense{}
	}
	center := dmath.Vec2{X: obj.X + obj.W/2, Y: obj.Y + obj.H/2}
	return locomotion.Sense{
		Submersible: level.Query.HasPropertyNear(center, level.Surface, tileprops.Submersible),
		Climbable:   level.Query.HasPropertyNear(center, level.Surface, tileprops.Climbable),
	}
}

// enterMode applies the new mode's envelope in one go and does the
// bookkeeping that goes with leaving the old one.
func enterMode(e *donburi.Entry, from, to locomotion.Mode) {
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e).Object
	player := components.Player.Get(e)
	loco := components.Locomotion.Get(e)

	physics.ApplyEnvelope(cfg.Envelopes().For(to), cfg.World.Gravity)

	// Entering a mode clears the crouch, but a boxed-in body stays short
	// until there is room to stand.
	if !loco.State.Crouching {
		tryStandUp(obj, player)
	}
	if to == locomotion.Climbing {
		physics.SpeedY = 0
	}

	components.Events.Get(e).Emit(components.Event{
		Kind: components.EventModeChanged,
		X:    obj.X,
		Y:    obj.Y,
		From: from,
		To:   to,
	})
	logger.Debug("locomotion mode changed",
		zap.String("from", from.String()),
		zap.String("to", to.String()),
		zap.Float64("x", obj.X),
		zap.Float64("y", obj.Y),
	)
}

func onLanded(e *donburi.Entry) {
	obj := components.Object.Get(e).Object
	loco := components.Locomotion.Get(e)

	// A landing can leave the body at full height while the crouch flag is
	// still held.
	if loco.State.Crouching {
		reduceHitboxForCrouch(obj)
	}
	components.Events.Get(e).Emit(components.Event{
		Kind: components.EventLanded,
		X:    obj.X,
		Y:    obj.Y,
	})
}
