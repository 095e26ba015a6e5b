package systems

import (
	"github.com/automoto/tidewalker/components"
	cfg "github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/shared/gamemath"
)

// GetAction returns the temporal state of an action for one player.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	if input == nil {
		return components.ActionState{}
	}
	return input.Action(id)
}

// horizontalAxis folds left/right into -1, 0 or 1.
func horizontalAxis(input *components.InputData) float64 {
	return gamemath.Axis(
		GetAction(input, cfg.ActionMoveLeft).Pressed,
		GetAction(input, cfg.ActionMoveRight).Pressed,
	)
}

// verticalAxis folds up/down into -1 (up), 0 or 1 (down).
func verticalAxis(input *components.InputData) float64 {
	return gamemath.Axis(
		GetAction(input, cfg.ActionMoveUp).Pressed,
		GetAction(input, cfg.ActionCrouch).Pressed,
	)
}

// flapPressed reports a new jump or up press this frame.
func flapPressed(input *components.InputData) bool {
	return GetAction(input, cfg.ActionJump).JustPressed ||
		GetAction(input, cfg.ActionMoveUp).JustPressed
}
