// Package input polls the keyboard and gamepads into each player's action
// buffer.
package input

import (
	cfg "github.com/automoto/tidewalker/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding represents a single key or button binding for an action
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps every action to its keys and buttons.
var Bindings = map[cfg.ActionID]Binding{
	cfg.ActionMoveLeft: {
		Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
		// D-pad Left (analog stick handled separately)
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftLeft,
		},
	},
	cfg.ActionMoveRight: {
		Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftRight,
		},
	},
	cfg.ActionMoveUp: {
		Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftTop,
		},
	},
	cfg.ActionCrouch: {
		Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonLeftBottom,
		},
	},
	cfg.ActionJump: {
		Keys: []ebiten.Key{ebiten.KeyX, ebiten.KeySpace},
		// A / Cross button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightBottom,
		},
	},
	cfg.ActionThrow: {
		Keys: []ebiten.Key{ebiten.KeyZ},
		// X / Square button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightLeft,
		},
	},
	cfg.ActionBlow: {
		Keys: []ebiten.Key{ebiten.KeyC},
		// B / Circle button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightRight,
		},
	},
	cfg.ActionToggleGhost: {
		Keys: []ebiten.Key{ebiten.KeyG},
		// Y / Triangle button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonRightTop,
		},
	},
	cfg.ActionRestart: {
		Keys: []ebiten.Key{ebiten.KeyR},
		// Start / Options button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonCenterRight,
		},
	},
	cfg.ActionToggleDebug: {
		Keys: []ebiten.Key{ebiten.KeyF3},
	},
	cfg.ActionLevelMenu: {
		Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyTab},
		// Back / Share button
		StandardGamepadButtons: []ebiten.StandardGamepadButton{
			ebiten.StandardGamepadButtonCenterLeft,
		},
	},
}
