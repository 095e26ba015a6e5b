package systems

import (
	"github.com/automoto/tidewalker/components"
	"github.com/automoto/tidewalker/shared/locomotion"
	"github.com/automoto/tidewalker/tags"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// Player is the handle external collaborators use to query and drive one
// controlled body: HUD, audio, hazards, pickups and the level restart flow.
type Player struct {
	entry *donburi.Entry
}

var _ Damageable = (*Player)(nil)

// PlayerFor wraps a player entry.
func PlayerFor(e *donburi.Entry) *Player {
	return &Player{entry: e}
}

// FirstPlayer returns the first player in w.
func FirstPlayer(w donburi.World) (*Player, bool) {
	entry, ok := tags.Player.First(w)
	if !ok {
		return nil, false
	}
	return PlayerFor(entry), true
}

func (p *Player) Entry() *donburi.Entry { return p.entry }

func (p *Player) loco() *components.LocomotionData {
	return components.Locomotion.Get(p.entry)
}

// State returns a copy of the locomotion state.
func (p *Player) State() locomotion.State { return p.loco().State }

func (p *Player) Mode() locomotion.Mode { return p.loco().State.Mode }

func (p *Player) IsSwimming() bool { return p.loco().State.IsSwimming() }

func (p *Player) IsClimbing() bool { return p.loco().State.IsClimbing() }

func (p *Player) IsGhost() bool { return p.loco().State.IsGhost() }

// IsCrawling reports the crouched posture.
func (p *Player) IsCrawling() bool { return p.loco().State.Crouching }

func (p *Player) IsInvulnerable() bool { return p.loco().State.Invulnerable }

// IsGrounded reports ground contact from the last collision pass.
func (p *Player) IsGrounded() bool {
	return components.Physics.Get(p.entry).Grounded()
}

func (p *Player) GhostJumpsRemaining() int { return p.loco().State.GhostJumps }

// Position returns the body's top-left corner.
func (p *Player) Position() (x, y float64) {
	obj := components.Object.Get(p.entry).Object
	return obj.X, obj.Y
}

// SetGhostMode turns ghost mode on or off. Entering never refills the jump
// budget; only ground contact does.
func (p *Player) SetGhostMode(on bool) {
	loco := p.loco()
	sig := locomotion.ExitGhost
	if on {
		sig = locomotion.EnterGhost
	}
	before := loco.State
	loco.State = locomotion.Apply(before, sig)
	if !locomotion.Changed(before, loco.State) {
		return
	}
	enterMode(p.entry, before.Mode, loco.State.Mode)
	logger.Info("ghost mode",
		zap.Bool("on", on),
		zap.Int("jumps", loco.State.GhostJumps),
	)
}

// TakeDamage reports whether the hit landed. Hits while invulnerable are
// ignored and leave the current window untouched.
func (p *Player) TakeDamage(sourceX float64) bool {
	return applyDamage(p.entry, sourceX)
}

// ResetForRestart cancels every pending callback and returns the player to
// its freshly spawned state without moving it.
func (p *Player) ResetForRestart() {
	resetForRestart(p.entry)
}

// DrainEvents returns and clears the events emitted since the last drain.
func (p *Player) DrainEvents() []components.Event {
	return components.Events.Get(p.entry).Drain()
}
