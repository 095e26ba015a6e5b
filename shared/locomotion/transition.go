package locomotion

// Signal is an input to Apply.
type Signal int

const (
	EnterSwimming Signal = iota
	ExitSwimming
	EnterClimbing
	ExitClimbing
	EnterGhost
	ExitGhost
	GroundContact
	GhostImpulse
	HazardContact
	RelocationSettled
	HitTaken
	InvulnerabilityExpired
	StaggerStart
	StaggerEnd
	CrouchStart
	CrouchEnd
	ThrowStart
	ThrowEnd
	BlowStart
	BlowEnd
	Reset
)

var signalNames = map[Signal]string{
	EnterSwimming:          "enter-swimming",
	ExitSwimming:           "exit-swimming",
	EnterClimbing:          "enter-climbing",
	ExitClimbing:           "exit-climbing",
	EnterGhost:             "enter-ghost",
	ExitGhost:              "exit-ghost",
	GroundContact:          "ground-contact",
	GhostImpulse:           "ghost-impulse",
	HazardContact:          "hazard-contact",
	RelocationSettled:      "relocation-settled",
	HitTaken:               "hit-taken",
	InvulnerabilityExpired: "invulnerability-expired",
	StaggerStart:           "stagger-start",
	StaggerEnd:             "stagger-end",
	CrouchStart:            "crouch-start",
	CrouchEnd:              "crouch-end",
	ThrowStart:             "throw-start",
	ThrowEnd:               "throw-end",
	BlowStart:              "blow-start",
	BlowEnd:                "blow-end",
	Reset:                  "reset",
}

func (s Signal) String() string {
	if name, ok := signalNames[s]; ok {
		return name
	}
	return "unknown"
}

// Apply returns the state that results from sig. Requests that make no
// sense in the current state return s unchanged.
func Apply(s State, sig Signal) State {
	switch sig {
	case EnterSwimming:
		if s.Mode == Swimming || s.Mode == Ghost {
			return s
		}
		s.Mode = Swimming
		s.Crouching = false

	case ExitSwimming:
		if s.Mode == Swimming {
			s.Mode = Grounded
		}

	case EnterClimbing:
		if s.Mode == Climbing || s.Mode == Ghost {
			return s
		}
		s.Mode = Climbing
		s.Crouching = false

	case ExitClimbing:
		if s.Mode == Climbing {
			s.Mode = Grounded
		}

	case EnterGhost:
		if s.Mode == Ghost {
			return s
		}
		s.Mode = Ghost
		s.Crouching = false
		s.GhostArmed = false

	case ExitGhost:
		if s.Mode != Ghost {
			return s
		}
		s.Mode = Grounded
		s.GhostArmed = false

	case GroundContact:
		// Contact arms the budget first, then an armed grounded body refills.
		s.GhostArmed = true
		s.GhostJumps = s.GhostJumpMax

	case GhostImpulse:
		if s.GhostJumps > 0 {
			s.GhostJumps--
		}

	case HazardContact:
		if s.Invulnerable {
			return s
		}
		s.Invulnerable = true
		s.Relocating = true

	case RelocationSettled:
		s.Relocating = false

	case HitTaken:
		s.Invulnerable = true

	case InvulnerabilityExpired:
		s.Invulnerable = false

	case StaggerStart:
		s.Staggered = true

	case StaggerEnd:
		s.Staggered = false

	case CrouchStart:
		if s.Mode == Grounded {
			s.Crouching = true
		}

	case CrouchEnd:
		s.Crouching = false

	case ThrowStart:
		s.Throwing = true

	case ThrowEnd:
		s.Throwing = false

	case BlowStart:
		s.Blowing = true

	case BlowEnd:
		s.Blowing = false

	case Reset:
		return NewState(s.GhostJumpMax)
	}
	return s
}

// ApplyAll folds signals over s in order.
func ApplyAll(s State, sigs ...Signal) State {
	for _, sig := range sigs {
		s = Apply(s, sig)
	}
	return s
}
