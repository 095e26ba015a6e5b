package systems

import (
	"testing"

	"github.com/automoto/tidewalker/components"
	cfg "github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/shared/leveldata"
	"github.com/automoto/tidewalker/tags"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

var reefRows = []string{
	"..........",
	"..........",
	"..........",
	"..........",
	"....##....",
	"##########",
}

func bootstrap(t *testing.T, level *leveldata.Level) (donburi.World, *Player) {
	t.Helper()
	cfg.ResetTuning()
	t.Cleanup(cfg.ResetTuning)
	w := donburi.NewWorld()
	return w, Bootstrap(w, level)
}

func countWalls(w donburi.World) int {
	n := 0
	tags.Wall.Each(w, func(*donburi.Entry) { n++ })
	return n
}

func TestBootstrapUsesSpawnObject(t *testing.T) {
	level := newTestLevel("lagoon", lagoonRows, leveldata.SpawnPoint{X: 50, Y: standY})
	w, p := bootstrap(t, level)

	x, y := p.Position()
	assert.Equal(t, 50.0, x)
	assert.Equal(t, standY, y)

	first, ok := FirstPlayer(w)
	require.True(t, ok)
	assert.Equal(t, p.Entry().Entity(), first.Entry().Entity())
	assert.Equal(t, 1, countWalls(w), "the floor row merges into one wall")
}

func TestBootstrapFallsBackToSpawnTile(t *testing.T) {
	rows := append([]string(nil), lagoonRows...)
	rows[8] = "....H.S...~~~~......"
	_, p := bootstrap(t, newTestLevel("lagoon", rows))

	x, y := p.Position()
	assert.Equal(t, 6*tileSize+(tileSize-cfg.Player.CollisionWidth)/2, x)
	assert.Equal(t, standY, y)
}

func TestBootstrapFallsBackToSafeCoordinate(t *testing.T) {
	_, p := bootstrap(t, newTestLevel("lagoon", lagoonRows))

	x, y := p.Position()
	assert.Equal(t, cfg.World.SafeX, x)
	assert.Equal(t, cfg.World.SafeY, y)
}

func TestRestartActionReturnsToSpawn(t *testing.T) {
	level := newTestLevel("lagoon", lagoonRows, leveldata.SpawnPoint{X: dryX, Y: standY})
	w, p := bootstrap(t, level)

	frames(w, p, 20, cfg.ActionMoveRight)
	require.True(t, p.TakeDamage(0))

	frame(w, p, cfg.ActionRestart)
	x, y := p.Position()
	assert.InDelta(t, dryX, x, 0.001)
	assert.InDelta(t, standY, y, 0.001)
	assert.False(t, p.IsInvulnerable())
}

func TestToggleGhostAction(t *testing.T) {
	w, p := newTestWorld(t, dryX, standY)

	frame(w, p, cfg.ActionToggleGhost)
	assert.True(t, p.IsGhost())
	physics := components.Physics.Get(p.Entry())
	assert.InDelta(t, cfg.World.Gravity*cfg.Ghost.GravityScale, physics.Gravity, 0.001)

	frame(w, p, cfg.ActionToggleGhost)
	assert.True(t, p.IsGhost(), "held key does not toggle again")

	frame(w, p)
	frame(w, p, cfg.ActionToggleGhost)
	assert.False(t, p.IsGhost())
}

func TestReloadLevelSwapsGeometry(t *testing.T) {
	w, p := bootstrap(t, newTestLevel("lagoon", lagoonRows, leveldata.SpawnPoint{X: dryX, Y: standY}))
	frames(w, p, 5, cfg.ActionMoveRight)

	reef := newTestLevel("reef", reefRows, leveldata.SpawnPoint{X: 16, Y: 80 - 28})
	require.NoError(t, ReloadLevel(w, reef))

	x, y := p.Position()
	assert.Equal(t, 16.0, x)
	assert.Equal(t, 52.0, y)
	assert.Equal(t, 2, countWalls(w))

	ld, ok := levelOf(w)
	require.True(t, ok)
	assert.Equal(t, "reef", ld.CurrentLevel.Name)

	space := components.Space.Get(mustSpace(t, w)).Space
	assert.Same(t, space, components.Object.Get(p.Entry()).Space)

	frames(w, p, 5)
	assert.True(t, p.IsGrounded())
	_, y = p.Position()
	assert.InDelta(t, 52.0, y, 0.001)
}

func TestReloadLevelWithoutLevel(t *testing.T) {
	w := donburi.NewWorld()
	assert.ErrorIs(t, ReloadLevel(w, newTestLevel("reef", reefRows)), ErrNoLevel)
}

func TestRelocationTargetFallbacks(t *testing.T) {
	flooded := []string{
		"~~~~~~",
		"~~~~~~",
		"~~~~~~",
		"~~~~~~",
	}
	body := func() *resolv.Object { return resolv.NewObject(40, 20, 12, 28) }

	t.Run("no level", func(t *testing.T) {
		cfg.ResetTuning()
		x, y, source := relocationTarget(donburi.NewWorld(), body())
		assert.Equal(t, "fallback", source)
		assert.Equal(t, cfg.World.SafeX, x)
		assert.Equal(t, cfg.World.SafeY, y)
	})

	t.Run("spawn", func(t *testing.T) {
		level := newTestLevel("flooded", flooded, leveldata.SpawnPoint{X: 8, Y: 4})
		w, _ := newTestWorldWith(t, level, 40, 20)
		x, y, source := relocationTarget(w, body())
		assert.Equal(t, "spawn", source)
		assert.Equal(t, 8.0, x)
		assert.Equal(t, 4.0, y)
	})

	t.Run("safe point", func(t *testing.T) {
		level := newTestLevel("flooded", flooded)
		level.SafePoint = &leveldata.SpawnPoint{X: 2, Y: 3}
		w, _ := newTestWorldWith(t, level, 40, 20)
		x, y, source := relocationTarget(w, body())
		assert.Equal(t, "safe-point", source)
		assert.Equal(t, 2.0, x)
		assert.Equal(t, 3.0, y)
	})

	t.Run("configured coordinate", func(t *testing.T) {
		w, _ := newTestWorldWith(t, newTestLevel("flooded", flooded), 40, 20)
		_, _, source := relocationTarget(w, body())
		assert.Equal(t, "fallback", source)
	})
}
