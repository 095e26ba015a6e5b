package factory

import (
	"github.com/automoto/tidewalker/archetypes"
	"github.com/automoto/tidewalker/components"
	cfg "github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/shared/leveldata"
	"github.com/automoto/tidewalker/shared/tileprops"
	"github.com/automoto/tidewalker/shared/tilequery"
	"github.com/yohamta/donburi"
)

// CreateLevel spawns the level entity, its collision space and the static
// geometry derived from solid and platform tiles.
func CreateLevel(w donburi.World, level *leveldata.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(w)
	components.Level.SetValue(entry, NewLevelData(level))

	CreateSpace(w, level.MapWidth, level.MapHeight, level.TileWidth, level.TileHeight)
	BuildStaticCollision(w, components.Level.Get(entry))
	return entry
}

// NewLevelData builds a fresh tile index and query for level.
func NewLevelData(level *leveldata.Level) components.LevelData {
	idx := tileprops.Build(level.Tiles)
	surface := level.Layer(cfg.World.SurfaceLayer)
	if surface == nil && len(level.LayerNames) > 0 {
		surface = level.Layer(level.LayerNames[0])
	}
	return components.LevelData{
		CurrentLevel: level,
		Index:        idx,
		Query:        tilequery.New(idx),
		Surface:      surface,
	}
}

// BuildStaticCollision creates walls and platforms for the surface layer.
// Horizontal runs of matching tiles become a single object.
func BuildStaticCollision(w donburi.World, ld *components.LevelData) int {
	layer := ld.Surface
	if layer == nil {
		return 0
	}
	count := 0
	for cy := 0; cy < layer.Height; cy++ {
		for _, prop := range []string{tileprops.Solid, tileprops.Platform} {
			start := -1
			for cx := 0; cx <= layer.Width; cx++ {
				match := cx < layer.Width && ld.Query.CellHas(layer, cx, cy, prop)
				if match && start < 0 {
					start = cx
				}
				if match || start < 0 {
					continue
				}
				origin := layer.CellOrigin(start, cy)
				width := float64(cx-start) * layer.CellW
				if prop == tileprops.Solid {
					CreateWall(w, origin.X, origin.Y, width, layer.CellH)
				} else {
					CreatePlatform(w, origin.X, origin.Y, width, layer.CellH)
				}
				count++
				start = -1
			}
		}
	}
	return count
}
