package input

import (
	"github.com/automoto/tidewalker/components"
	cfg "github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Update polls raw input into every player's buffer. Must run before
// the gameplay pipeline.
func Update(e *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		poll(components.Input.Get(entry))
	})
}

func poll(input *components.InputData) {
	input.Advance()

	var keyboardUsed, gamepadUsed bool
	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if foldStick(&input.Current, h, v, cfg.Input.AnalogDeadzone) {
			gamepadUsed = true
		}
	}

	// Gamepad takes priority if both were used
	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// foldStick merges a left-stick reading into the directional actions and
// reports whether it left the deadzone.
func foldStick(current *[cfg.ActionCount]bool, horizontal, vertical, deadzone float64) bool {
	used := false
	if horizontal < -deadzone {
		current[cfg.ActionMoveLeft] = true
		used = true
	}
	if horizontal > deadzone {
		current[cfg.ActionMoveRight] = true
		used = true
	}
	if vertical < -deadzone {
		current[cfg.ActionMoveUp] = true
		used = true
	}
	if vertical > deadzone {
		current[cfg.ActionCrouch] = true
		used = true
	}
	return used
}
