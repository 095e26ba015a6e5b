package config

import "github.com/automoto/tidewalker/shared/locomotion"

// Envelopes builds the per-mode physics envelopes from the current tuning.
func Envelopes() locomotion.Envelopes {
	var e locomotion.Envelopes
	e[locomotion.Grounded] = locomotion.Envelope{
		GravityScale: 1,
		MaxSpeedX:    Player.RunSpeed,
		MaxSpeedY:    World.MaxFallSpeed,
		Collision:    true,
	}
	e[locomotion.Swimming] = locomotion.Envelope{
		GravityScale:    Swim.GravityScale,
		DragX:           Swim.DragX,
		DragY:           Swim.DragY,
		MaxSpeedX:       Swim.MaxSpeedX,
		MaxSpeedY:       Swim.MaxSpeedY,
		Impulse:         Swim.Impulse,
		ImpulseInterval: Swim.ImpulseInterval,
		Collision:       true,
	}
	e[locomotion.Climbing] = locomotion.Envelope{
		GravityScale: 0,
		DragX:        Climb.Drag,
		DragY:        Climb.Drag,
		MaxSpeedX:    Climb.Speed,
		MaxSpeedY:    Climb.Speed,
		Collision:    false,
	}
	e[locomotion.Ghost] = locomotion.Envelope{
		GravityScale:    Ghost.GravityScale,
		DragX:           Ghost.DragX,
		DragY:           Ghost.DragY,
		MaxSpeedX:       Ghost.MaxSpeedX,
		MaxSpeedY:       Ghost.MaxSpeedY,
		Impulse:         Ghost.Impulse,
		ImpulseInterval: Ghost.ImpulseInterval,
		Collision:       true,
	}
	return e
}
