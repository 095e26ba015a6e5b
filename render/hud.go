package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/tidewalker/components"
	"github.com/automoto/tidewalker/fonts"
	"github.com/automoto/tidewalker/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	hudColor   = color.RGBA{240, 240, 240, 255}
	pipFull    = color.RGBA{200, 160, 255, 255}
	pipEmpty   = color.RGBA{70, 60, 90, 255}
	debugColor = color.RGBA{0, 255, 255, 255}
)

// DrawHUD shows the locomotion mode and the ghost-jump budget.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	p, ok := systems.FirstPlayer(e.World)
	if !ok {
		return
	}
	state := p.State()
	text.Draw(screen, state.Mode.String(), fonts.Regular.Get(), 8, 16, hudColor)

	if state.IsGhost() {
		for i := 0; i < state.GhostJumpMax; i++ {
			c := pipEmpty
			if i < state.GhostJumps {
				c = pipFull
			}
			vector.FillRect(screen, float32(8+i*10), 22, 8, 8, c, false)
		}
	}
}

// DrawDebug outlines collision objects and prints the body state when
// debug display is on.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settingsEntry, ok := components.Settings.First(e.World)
	if !ok || !components.Settings.Get(settingsEntry).ShowDebug {
		return
	}
	offX, offY := view(e.World, screen)

	if spaceEntry, ok := components.Space.First(e.World); ok {
		for _, obj := range components.Space.Get(spaceEntry).Objects() {
			c := debugColor
			if obj.HasTags("solid") {
				c = color.RGBA{100, 100, 100, 255}
			} else if obj.HasTags("Player") {
				c = color.RGBA{0, 0, 255, 255}
			}
			x, y := float32(obj.X+offX), float32(obj.Y+offY)
			vector.StrokeRect(screen, x, y, float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	p, ok := systems.FirstPlayer(e.World)
	if !ok {
		return
	}
	state := p.State()
	physics := components.Physics.Get(p.Entry())
	x, y := p.Position()
	lines := []string{
		fmt.Sprintf("pos %.1f,%.1f vel %.1f,%.1f", x, y, physics.SpeedX, physics.SpeedY),
		fmt.Sprintf("grounded %t crouch %t invuln %t", p.IsGrounded(), state.Crouching, state.Invulnerable),
		fmt.Sprintf("pose %s jumps %d/%d", components.Player.Get(p.Entry()).Pose, state.GhostJumps, state.GhostJumpMax),
	}
	for i, line := range lines {
		text.Draw(screen, line, fonts.Small.Get(), 8, screen.Bounds().Dy()-36+i*12, debugColor)
	}
}
