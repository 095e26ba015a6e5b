// Package locomotion holds the player's movement regime as a plain value:
// the active Mode, the orthogonal sub-state flags, and the pure transition
// functions that move between them. Nothing here touches the ECS world.
package locomotion

// Mode is the mutually exclusive top-level movement regime.
type Mode int

const (
	Grounded Mode = iota
	Swimming
	Climbing
	Ghost

	ModeCount
)

var modeNames = [ModeCount]string{
	Grounded: "grounded",
	Swimming: "swimming",
	Climbing: "climbing",
	Ghost:    "ghost",
}

func (m Mode) String() string {
	if m < 0 || m >= ModeCount {
		return "unknown"
	}
	return modeNames[m]
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	return m >= 0 && m < ModeCount
}
