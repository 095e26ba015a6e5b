// Package render draws the level, the player and the HUD with flat
// shapes. It only reads the world.
package render

import (
	"image/color"

	"github.com/automoto/tidewalker/components"
	"github.com/automoto/tidewalker/shared/tileprops"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	colorSolid    = color.RGBA{92, 84, 76, 255}
	colorPlatform = color.RGBA{150, 120, 80, 255}
	colorWater    = color.RGBA{40, 110, 200, 140}
	colorLadder   = color.RGBA{190, 160, 60, 255}
	colorHazard   = color.RGBA{200, 50, 50, 255}
)

var modeColors = [...]color.RGBA{
	{230, 230, 230, 255}, // grounded
	{120, 200, 255, 255}, // swimming
	{240, 200, 90, 255},  // climbing
	{200, 160, 255, 255}, // ghost
}

// view returns the screen offset for world coordinates.
func view(w donburi.World, screen *ebiten.Image) (offX, offY float64) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return float64(width)/2 - camera.Position.X, float64(height)/2 - camera.Position.Y
}

// DrawLevel fills each surface cell by its most significant property.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	ld := components.Level.Get(levelEntry)
	layer := ld.Surface
	if layer == nil {
		return
	}
	offX, offY := view(e.World, screen)

	for cy := 0; cy < layer.Height; cy++ {
		for cx := 0; cx < layer.Width; cx++ {
			c, ok := tileColor(ld, cx, cy)
			if !ok {
				continue
			}
			origin := layer.CellOrigin(cx, cy)
			vector.FillRect(screen,
				float32(origin.X+offX), float32(origin.Y+offY),
				float32(layer.CellW), float32(layer.CellH),
				c, false)
		}
	}
}

func tileColor(ld *components.LevelData, cx, cy int) (color.RGBA, bool) {
	has := func(name string) bool { return ld.Query.CellHas(ld.Surface, cx, cy, name) }
	switch {
	case has(tileprops.Solid):
		return colorSolid, true
	case has(tileprops.Hazardous):
		return colorHazard, true
	case has(tileprops.Submersible):
		return colorWater, true
	case has(tileprops.Climbable):
		return colorLadder, true
	case has(tileprops.Platform):
		return colorPlatform, true
	}
	return color.RGBA{}, false
}

// DrawPlayers draws each body tinted by mode, with the blink alpha and the
// appear scale applied around its center.
func DrawPlayers(e *ecs.ECS, screen *ebiten.Image) {
	offX, offY := view(e.World, screen)
	components.Flash.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry).Object
		flash := components.Flash.Get(entry)
		mode := components.Locomotion.Get(entry).State.Mode

		c := modeColors[0]
		if int(mode) < len(modeColors) {
			c = modeColors[mode]
		}
		c.A = uint8(float64(c.A) * clamp01(flash.Alpha))

		scale := clamp01(flash.Scale)
		w, h := obj.W*scale, obj.H*scale
		x := obj.X + (obj.W-w)/2 + offX
		y := obj.Y + (obj.H - h) + offY
		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), c, false)

		// Facing marker
		facing := components.Player.Get(entry).Direction.X
		eyeX := x + w/2 + facing*w/4
		vector.FillRect(screen, float32(eyeX-1), float32(y+h/5), 2, 2, color.RGBA{20, 20, 20, c.A}, false)
	})
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
