package components

import (
	"github.com/automoto/tidewalker/shared/locomotion"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// PhysicsData is the body's integrator state. Velocities are px/s.
type PhysicsData struct {
	SpeedX float64
	SpeedY float64

	// Envelope currently in force.
	Gravity   float64 // px/s², already scaled
	DragX     float64
	DragY     float64
	MaxSpeedX float64
	MaxSpeedY float64
	Collides  bool

	// Contact flags refreshed by the collision system each frame.
	OnGround     *resolv.Object
	WasOnGround  bool
	BlockedLeft  bool
	BlockedRight bool
}

var Physics = donburi.NewComponentType[PhysicsData]()

// Grounded reports whether the body touched ground during the last collision pass.
func (p *PhysicsData) Grounded() bool {
	return p.OnGround != nil
}

// ApplyEnvelope replaces every envelope field at once. gravity is the
// unscaled world gravity.
func (p *PhysicsData) ApplyEnvelope(env locomotion.Envelope, gravity float64) {
	p.Gravity = gravity * env.GravityScale
	p.DragX = env.DragX
	p.DragY = env.DragY
	p.MaxSpeedX = env.MaxSpeedX
	p.MaxSpeedY = env.MaxSpeedY
	p.Collides = env.Collision
}
