package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionCrouch
	ActionJump
	ActionThrow
	ActionBlow
	ActionToggleGhost
	ActionRestart
	ActionToggleDebug
	ActionLevelMenu
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:        "none",
	ActionMoveLeft:    "move_left",
	ActionMoveRight:   "move_right",
	ActionMoveUp:      "move_up",
	ActionCrouch:      "crouch",
	ActionJump:        "jump",
	ActionThrow:       "throw",
	ActionBlow:        "blow",
	ActionToggleGhost: "toggle_ghost",
	ActionRestart:     "restart",
	ActionToggleDebug: "toggle_debug",
	ActionLevelMenu:   "level_menu",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// InputConfig holds device-independent input tuning. Key and button
// bindings live with the polling code in package input.
type InputConfig struct {
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64 `yaml:"analog_deadzone"`
}

// Input is the global input configuration
var Input InputConfig
