package systems

import (
	"testing"

	"github.com/automoto/tidewalker/components"
	cfg "github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/shared/locomotion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestingOnDryGround(t *testing.T) {
	w, p := newTestWorld(t, dryX, standY)

	frame(w, p)

	assert.False(t, p.IsSwimming())
	assert.False(t, p.IsClimbing())
	assert.True(t, p.IsGrounded())
	_, y := p.Position()
	assert.InDelta(t, standY, y, 0.001)
}

func TestEnteringWaterSwitchesEnvelope(t *testing.T) {
	w, p := newTestWorld(t, poolX, standY)

	frame(w, p)

	require.True(t, p.IsSwimming())
	physics := components.Physics.Get(p.Entry())
	assert.InDelta(t, cfg.World.Gravity*cfg.Swim.GravityScale, physics.Gravity, 0.001)
	assert.Equal(t, cfg.Swim.DragY, physics.DragY)
	assert.Equal(t, cfg.Swim.MaxSpeedY, physics.MaxSpeedY)
	assert.Contains(t, eventKinds(p.DrainEvents()), components.EventModeChanged)
}

func TestGhostInWaterRelocates(t *testing.T) {
	w, p := newTestWorld(t, poolX, standY)
	p.SetGhostMode(true)
	p.DrainEvents()

	frame(w, p)

	assert.False(t, p.IsSwimming())
	assert.True(t, p.IsGhost())
	assert.True(t, p.IsInvulnerable())
	assert.True(t, p.State().Relocating)

	// Column 9 is the nearest dry cell on the same row.
	x, y := p.Position()
	assert.InDelta(t, 9*tileSize+2, x, 0.001)
	assert.InDelta(t, standY, y, 0.001)

	kinds := eventKinds(p.DrainEvents())
	assert.Contains(t, kinds, components.EventHit)
	assert.Contains(t, kinds, components.EventAppeared)
}

func TestRelocationIgnoresInputUntilSettled(t *testing.T) {
	w, p := newTestWorld(t, poolX, standY)
	p.SetGhostMode(true)
	frame(w, p)
	settledX, _ := p.Position()

	frame(w, p, cfg.ActionMoveRight)
	x, _ := p.Position()
	assert.InDelta(t, settledX, x, 0.001)

	settleFrames := int(cfg.Ghost.RelocationSettle/cfg.World.FixedStep) + 1
	frames(w, p, settleFrames)
	assert.False(t, p.State().Relocating)
	assert.True(t, p.IsInvulnerable(), "the settle window is shorter than invulnerability")

	frames(w, p, 10, cfg.ActionMoveLeft)
	x, _ = p.Position()
	assert.Less(t, x, settledX)
}

func TestResetForRestartCancelsPendingTimers(t *testing.T) {
	w, p := newTestWorld(t, dryX, standY)
	frame(w, p)
	p.SetGhostMode(true)
	components.Locomotion.Get(p.Entry()).State.GhostJumps = 1
	require.True(t, p.TakeDamage(0))
	require.True(t, p.IsInvulnerable())

	p.ResetForRestart()

	assert.Equal(t, cfg.Ghost.Jumps, p.GhostJumpsRemaining())
	assert.False(t, p.IsInvulnerable())
	assert.False(t, p.IsGhost())
	assert.Zero(t, components.Locomotion.Get(p.Entry()).Tasks.Len())

	before := p.State()
	fired := scheduler(w).Advance(2 * cfg.Invuln.Duration)
	assert.Zero(t, fired)
	assert.Equal(t, before, p.State())
}

func TestSwimmingAndClimbingNeverOverlap(t *testing.T) {
	w, p := newTestWorld(t, ladderX, standY)

	check := func() {
		t.Helper()
		require.False(t, p.IsSwimming() && p.IsClimbing())
	}
	for i := 0; i < 30; i++ {
		frame(w, p, cfg.ActionMoveUp)
		check()
	}
	for i := 0; i < 90; i++ {
		frame(w, p, cfg.ActionMoveRight, cfg.ActionMoveUp)
		check()
	}
	assert.True(t, p.IsSwimming(), "the walk ends in the pool")
}

func TestClimbingRequiresUpInput(t *testing.T) {
	w, p := newTestWorld(t, ladderX, standY)

	frame(w, p)
	assert.False(t, p.IsClimbing())

	frame(w, p, cfg.ActionMoveUp)
	require.True(t, p.IsClimbing())
	physics := components.Physics.Get(p.Entry())
	assert.False(t, physics.Collides)
	assert.Zero(t, physics.Gravity)

	frame(w, p)
	assert.False(t, p.IsClimbing())
	assert.True(t, physics.Collides)
}

func TestClimbingDownHoldsLadder(t *testing.T) {
	w, p := newTestWorld(t, ladderX, standY)
	frames(w, p, 20, cfg.ActionMoveUp)
	require.True(t, p.IsClimbing())
	_, top := p.Position()

	frames(w, p, 5, cfg.ActionCrouch)
	assert.True(t, p.IsClimbing())
	_, y := p.Position()
	assert.Greater(t, y, top)

	for i := 0; i < 60 && p.IsClimbing(); i++ {
		frame(w, p, cfg.ActionCrouch)
	}
	require.False(t, p.IsClimbing(), "stepping off at the foot of the ladder")
	obj := components.Object.Get(p.Entry()).Object
	assert.InDelta(t, floorY, obj.Y+obj.H, 0.01)
	assert.True(t, components.Physics.Get(p.Entry()).Collides)
}

func TestClimbingStopsAtWalls(t *testing.T) {
	rows := append([]string(nil), lagoonRows...)
	for r := 5; r <= 8; r++ {
		rows[r] = rows[r][:5] + "#" + rows[r][6:]
	}
	w, p := newTestWorldWith(t, newTestLevel("shaft", rows), ladderX, standY)

	frames(w, p, 30, cfg.ActionMoveUp, cfg.ActionMoveRight)
	require.True(t, p.IsClimbing())
	obj := components.Object.Get(p.Entry()).Object
	assert.LessOrEqual(t, obj.X+obj.W, 5*tileSize+0.01)
	assert.True(t, components.Physics.Get(p.Entry()).BlockedRight)
}

func TestGhostToggleDoesNotRefillBudget(t *testing.T) {
	w, p := newTestWorld(t, 15*tileSize, 60)
	p.SetGhostMode(true)
	components.Locomotion.Get(p.Entry()).State.GhostJumps = 1

	p.SetGhostMode(false)
	p.SetGhostMode(true)
	assert.Equal(t, 1, p.GhostJumpsRemaining())

	for i := 0; i < 180 && !p.IsGrounded(); i++ {
		frame(w, p)
		if !p.IsGrounded() {
			require.Equal(t, 1, p.GhostJumpsRemaining())
		}
	}
	require.True(t, p.IsGrounded())

	// Contact is confirmed on the following frame.
	frame(w, p)
	assert.Equal(t, cfg.Ghost.Jumps, p.GhostJumpsRemaining())
}

func TestGhostImpulseSpendsBudget(t *testing.T) {
	w, p := newTestWorld(t, 15*tileSize, 60)
	p.SetGhostMode(true)
	p.DrainEvents()

	frame(w, p, cfg.ActionJump)
	assert.Equal(t, cfg.Ghost.Jumps-1, p.GhostJumpsRemaining())
	assert.Equal(t, 1, countKind(p.DrainEvents(), components.EventImpulse))

	components.Locomotion.Get(p.Entry()).State.GhostJumps = 0
	frames(w, p, int(cfg.Ghost.ImpulseInterval/cfg.World.FixedStep)+1)
	frame(w, p, cfg.ActionJump)
	assert.Zero(t, countKind(p.DrainEvents(), components.EventImpulse))
	assert.Zero(t, p.GhostJumpsRemaining())
}

func TestSwimImpulseRespectsInterval(t *testing.T) {
	w, p := newTestWorld(t, poolX, standY)
	frame(w, p)
	require.True(t, p.IsSwimming())
	p.DrainEvents()

	frame(w, p, cfg.ActionJump)
	assert.Less(t, components.Physics.Get(p.Entry()).SpeedY, 0.0)
	frame(w, p)
	frame(w, p, cfg.ActionJump)

	assert.Equal(t, 1, countKind(p.DrainEvents(), components.EventImpulse))
}

func TestEnteringSwimmingTwiceKeepsEnvelope(t *testing.T) {
	w, p := newTestWorld(t, poolX, standY)
	frame(w, p)
	require.True(t, p.IsSwimming())
	physics := *components.Physics.Get(p.Entry())

	loco := components.Locomotion.Get(p.Entry())
	before := loco.State
	loco.State = locomotion.Apply(loco.State, locomotion.EnterSwimming)
	assert.False(t, locomotion.Changed(before, loco.State))

	frame(w, p)
	after := components.Physics.Get(p.Entry())
	assert.Equal(t, physics.Gravity, after.Gravity)
	assert.Equal(t, physics.DragX, after.DragX)
	assert.Equal(t, physics.DragY, after.DragY)
}
