package components

import (
	cfg "github.com/automoto/tidewalker/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions. Analog sticks are folded into the directional actions past the
// deadzone. JustPressed/JustReleased are computed on demand by comparing
// frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method
}

var Input = donburi.NewComponentType[InputData]()

// Action returns the temporal state of one action.
func (in *InputData) Action(action cfg.ActionID) ActionState {
	if action < 0 || action >= cfg.ActionCount {
		return ActionState{}
	}
	cur, prev := in.Current[action], in.Previous[action]
	return ActionState{
		Pressed:      cur,
		JustPressed:  cur && !prev,
		JustReleased: !cur && prev,
	}
}

// Advance copies Current into Previous and clears Current, ready for a new
// frame to be sampled.
func (in *InputData) Advance() {
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
}
