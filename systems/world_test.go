package systems

import (
	"testing"

	"github.com/automoto/tidewalker/components"
	cfg "github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/shared/leveldata"
	"github.com/automoto/tidewalker/shared/tileprops"
	"github.com/automoto/tidewalker/shared/tilequery"
	"github.com/automoto/tidewalker/systems/factory"
	"github.com/automoto/tidewalker/timer"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const tileSize = 16

// lagoonRows is the default test map: a ladder at column 4, a pool at
// columns 10-13 and a solid floor. The floor top is at y=144.
var lagoonRows = []string{
	"....................",
	"....................",
	"....................",
	"....................",
	"....................",
	"....H...............",
	"....H...............",
	"....H.....~~~~......",
	"....H.....~~~~......",
	"####################",
}

const (
	floorY  = 144.0
	standY  = floorY - 28 // top of a standing body on the floor
	ladderX = 4*tileSize + 2
	poolX   = 11*tileSize + 2
	dryX    = 2*tileSize + 2
	midX    = 7*tileSize + 2 // dry floor with room on both sides
)

var testTiles = tileprops.RawTable{
	1: {{Name: tileprops.Solid, Type: "bool", Value: "true"}},
	2: {{Name: tileprops.Submersible, Type: "bool", Value: "true"}},
	3: {{Name: tileprops.Climbable, Type: "bool", Value: "true"}},
	4: {{Name: tileprops.Platform, Type: "bool", Value: "true"}},
	5: {{Name: tileprops.SpawnPoint, Type: "bool", Value: "true"}},
}

var glyphs = map[rune]uint32{'#': 1, '~': 2, 'H': 3, '=': 4, 'S': 5}

func newTestLevel(name string, rows []string, spawns ...leveldata.SpawnPoint) *leveldata.Level {
	width, height := len(rows[0]), len(rows)
	layer := tilequery.NewLayer("surface", width, height, tileSize, tileSize)
	for cy, row := range rows {
		for cx, ch := range row {
			layer.SetTile(cx, cy, glyphs[ch])
		}
	}
	return &leveldata.Level{
		Name:        name,
		Tiles:       testTiles,
		Layers:      map[string]*tilequery.Layer{"surface": layer},
		LayerNames:  []string{"surface"},
		SpawnPoints: spawns,
		TileWidth:   tileSize,
		TileHeight:  tileSize,
		MapWidth:    width * tileSize,
		MapHeight:   height * tileSize,
	}
}

// newTestWorld builds a headless world with the lagoon map and one player
// at (x, y).
func newTestWorld(t *testing.T, x, y float64) (donburi.World, *Player) {
	t.Helper()
	return newTestWorldWith(t, newTestLevel("lagoon", lagoonRows), x, y)
}

func newTestWorldWith(t *testing.T, level *leveldata.Level, x, y float64) (donburi.World, *Player) {
	t.Helper()
	cfg.ResetTuning()
	t.Cleanup(cfg.ResetTuning)

	w := donburi.NewWorld()
	clock := factory.CreateClock(w)
	factory.CreateLevel(w, level)
	entry := factory.CreatePlayer(w, x, y, components.Clock.Get(clock).Scheduler)
	return w, PlayerFor(entry)
}

// frame samples held as this frame's input and runs one fixed step.
func frame(w donburi.World, p *Player, held ...cfg.ActionID) {
	in := components.Input.Get(p.Entry())
	in.Advance()
	for _, a := range held {
		in.Current[a] = true
	}
	Step(w, cfg.World.FixedStep)
}

func frames(w donburi.World, p *Player, n int, held ...cfg.ActionID) {
	for i := 0; i < n; i++ {
		frame(w, p, held...)
	}
}

func scheduler(w donburi.World) *timer.Scheduler {
	clock, _ := clockOf(w)
	return clock.Scheduler
}

func eventKinds(events []components.Event) []components.EventKind {
	kinds := make([]components.EventKind, 0, len(events))
	for _, ev := range events {
		kinds = append(kinds, ev.Kind)
	}
	return kinds
}

func countKind(events []components.Event, kind components.EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func mustSpace(t *testing.T, w donburi.World) *donburi.Entry {
	t.Helper()
	entry, ok := components.Space.First(w)
	require.True(t, ok)
	return entry
}
