package systems

import (
	"errors"

	"github.com/automoto/tidewalker/archetypes"
	"github.com/automoto/tidewalker/components"
	cfg "github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/shared/leveldata"
	"github.com/automoto/tidewalker/shared/locomotion"
	"github.com/automoto/tidewalker/shared/tileprops"
	"github.com/automoto/tidewalker/systems/factory"
	"github.com/automoto/tidewalker/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// ErrNoLevel is returned when an operation needs a loaded level.
var ErrNoLevel = errors.New("systems: no level loaded")

// Bootstrap populates an empty world with a clock, the level, its static
// geometry and one player at the level spawn.
func Bootstrap(w donburi.World, level *leveldata.Level) *Player {
	clock := factory.CreateClock(w)
	levelEntry := factory.CreateLevel(w, level)

	x, y := spawnPosition(components.Level.Get(levelEntry))
	entry := factory.CreatePlayer(w, x, y, components.Clock.Get(clock).Scheduler)

	logger.Info("level loaded",
		zap.String("level", level.Name),
		zap.Int("tiles", components.Level.Get(levelEntry).Index.Len()),
		zap.Float64("spawn_x", x),
		zap.Float64("spawn_y", y),
	)
	return PlayerFor(entry)
}

// ReloadLevel swaps in a freshly loaded level: a new tile index, a new
// collision space with rebuilt static geometry, and every player reset to
// the new spawn.
func ReloadLevel(w donburi.World, level *leveldata.Level) error {
	levelEntry, ok := components.Level.First(w)
	if !ok {
		return ErrNoLevel
	}
	components.Level.SetValue(levelEntry, factory.NewLevelData(level))
	ld := components.Level.Get(levelEntry)

	factory.RemoveStatic(w)
	space := resolv.NewSpace(level.MapWidth, level.MapHeight, level.TileWidth, level.TileHeight)
	spaceEntry, ok := components.Space.First(w)
	if !ok {
		spaceEntry = archetypes.Space.Spawn(w)
	}
	components.Space.SetValue(spaceEntry, components.SpaceData{Space: space})
	tags.Player.Each(w, func(e *donburi.Entry) {
		space.Add(components.Object.Get(e).Object)
	})
	walls := factory.BuildStaticCollision(w, ld)

	RestartLevel(w)
	logger.Info("level reloaded",
		zap.String("level", level.Name),
		zap.Int("tiles", ld.Index.Len()),
		zap.Int("static_objects", walls),
	)
	return nil
}

// RestartLevel resets every player and moves it back to the level spawn.
func RestartLevel(w donburi.World) {
	x, y := cfg.World.SafeX, cfg.World.SafeY
	if ld, ok := levelOf(w); ok {
		x, y = spawnPosition(ld)
	}
	tags.Player.Each(w, func(e *donburi.Entry) {
		resetForRestart(e)
		player := components.Player.Get(e)
		player.SpawnX, player.SpawnY = x, y
		placeAt(components.Object.Get(e).Object, x, y)
	})
}

// UpdateLevelActions handles the level-content stand-ins on the keyboard:
// restart and the ghost pickup toggle.
func UpdateLevelActions(w donburi.World) {
	restart := false
	tags.Player.Each(w, func(e *donburi.Entry) {
		input := components.Input.Get(e)
		if GetAction(input, cfg.ActionRestart).JustPressed {
			restart = true
		}
		if GetAction(input, cfg.ActionToggleGhost).JustPressed {
			p := PlayerFor(e)
			p.SetGhostMode(!p.IsGhost())
		}
	})
	if restart {
		RestartLevel(w)
	}
}

// spawnPosition picks the first PlayerSpawn object, then the first tile
// flagged spawnPoint, then the configured safe coordinate.
func spawnPosition(ld *components.LevelData) (x, y float64) {
	if ld.CurrentLevel != nil && len(ld.CurrentLevel.SpawnPoints) > 0 {
		sp := ld.CurrentLevel.SpawnPoints[0]
		return sp.X, sp.Y
	}
	if layer := ld.Surface; layer != nil {
		for cy := 0; cy < layer.Height; cy++ {
			for cx := 0; cx < layer.Width; cx++ {
				if !ld.Query.CellHas(layer, cx, cy, tileprops.SpawnPoint) {
					continue
				}
				origin := layer.CellOrigin(cx, cy)
				return origin.X + (layer.CellW-cfg.Player.CollisionWidth)/2,
					origin.Y + layer.CellH - cfg.Player.CollisionHeight
			}
		}
	}
	return cfg.World.SafeX, cfg.World.SafeY
}

// resetForRestart cancels every pending callback, then restores the
// locomotion defaults, the body and the envelope.
func resetForRestart(e *donburi.Entry) {
	loco := components.Locomotion.Get(e)
	cancelled := loco.Tasks.CancelAll()
	loco.State = locomotion.NewState(cfg.Ghost.Jumps)
	loco.Cooldowns = components.CooldownData{}
	loco.InvulnTask = 0
	loco.StaggerTask = 0
	loco.RelocationTask = 0

	player := components.Player.Get(e)
	obj := components.Object.Get(e).Object
	restoreHitbox(obj, player)
	player.Pose = components.PoseIdle

	physics := components.Physics.Get(e)
	physics.SpeedX, physics.SpeedY = 0, 0
	physics.OnGround = nil
	physics.WasOnGround = false
	physics.BlockedLeft, physics.BlockedRight = false, false
	physics.ApplyEnvelope(cfg.Envelopes().For(locomotion.Grounded), cfg.World.Gravity)

	resetFlash(e)
	logger.Debug("player reset", zap.Int("cancelled_tasks", cancelled))
}
