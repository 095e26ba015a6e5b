package locomotion

// Sense is what the spatial query and the integrator report for one frame.
type Sense struct {
	Submersible bool
	Climbable   bool
	Grounded    bool
}

// Intent is the directional input relevant to mode selection.
type Intent struct {
	Up   bool
	Down bool
}

// Evaluate returns the mode signals warranted this frame, in application
// order. Rules are tried in priority order: ghost hazard, water entry,
// water exit, then ladder engagement.
func Evaluate(s State, sense Sense, in Intent) []Signal {
	if s.Mode == Ghost {
		if sense.Submersible && !s.Invulnerable && !s.Relocating {
			return []Signal{HazardContact}
		}
		return nil
	}

	if sense.Submersible {
		if s.Mode != Swimming {
			return []Signal{EnterSwimming}
		}
		return nil
	}

	var sigs []Signal
	mode := s.Mode
	if mode == Swimming {
		sigs = append(sigs, ExitSwimming)
		mode = Grounded
	}

	// Only up grabs a ladder. Once on it, either direction holds on until
	// the body climbs down onto the floor.
	switch {
	case mode == Grounded && sense.Climbable && in.Up:
		sigs = append(sigs, EnterClimbing)
	case mode == Climbing && !(sense.Climbable && (in.Up || in.Down)):
		sigs = append(sigs, ExitClimbing)
	case mode == Climbing && sense.Grounded && in.Down && !in.Up:
		sigs = append(sigs, ExitClimbing)
	}
	return sigs
}

// Step evaluates and applies one frame of mode transitions.
func Step(s State, sense Sense, in Intent) (State, []Signal) {
	sigs := Evaluate(s, sense, in)
	return ApplyAll(s, sigs...), sigs
}

// Changed reports whether the mode differs between two states, i.e. whether
// a new envelope must be applied.
func Changed(before, after State) bool {
	return before.Mode != after.Mode
}
