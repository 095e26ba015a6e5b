package locomotion

// DefaultGhostJumps is the ghost-flight budget used when none is configured.
const DefaultGhostJumps = 3

// State is the complete locomotion state of one controlled body.
type State struct {
	Mode Mode

	Crouching    bool
	Throwing     bool
	Blowing      bool
	Invulnerable bool
	Relocating   bool
	// Staggered is the short window after a hit in which the knockback
	// owns the body's velocity and movement input is ignored.
	Staggered bool

	GhostJumps   int
	GhostJumpMax int
	// GhostArmed is set by the first ground contact after a ghost toggle
	// and cleared by the toggle itself. The budget only refills while armed.
	GhostArmed bool
}

// NewState returns the restart defaults: grounded, no sub-flags, full budget.
func NewState(ghostJumpMax int) State {
	if ghostJumpMax <= 0 {
		ghostJumpMax = DefaultGhostJumps
	}
	return State{
		Mode:         Grounded,
		GhostJumps:   ghostJumpMax,
		GhostJumpMax: ghostJumpMax,
	}
}

func (s State) IsSwimming() bool { return s.Mode == Swimming }
func (s State) IsClimbing() bool { return s.Mode == Climbing }
func (s State) IsGhost() bool    { return s.Mode == Ghost }

// ActionLocked reports whether a timed action currently owns the body's
// animation state.
func (s State) ActionLocked() bool {
	return s.Throwing || s.Blowing
}
