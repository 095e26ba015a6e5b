package factory

import (
	"github.com/automoto/tidewalker/archetypes"
	"github.com/automoto/tidewalker/components"
	cfg "github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/shared/locomotion"
	"github.com/automoto/tidewalker/tags"
	"github.com/automoto/tidewalker/timer"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the controlled body at (x, y), top-left. Its
// deferred callbacks are tracked in a task set on sched.
func CreatePlayer(w donburi.World, x, y float64, sched *timer.Scheduler) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	obj := resolv.NewObject(x, y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		Direction:   components.Vector{X: cfg.DirectionRight},
		StandHeight: cfg.Player.CollisionHeight,
		SpawnX:      x,
		SpawnY:      y,
		Pose:        components.PoseIdle,
	})

	physics := components.PhysicsData{}
	env := cfg.Envelopes()
	physics.ApplyEnvelope(env.For(locomotion.Grounded), cfg.World.Gravity)
	components.Physics.SetValue(player, physics)

	components.Locomotion.SetValue(player, components.LocomotionData{
		State: locomotion.NewState(cfg.Ghost.Jumps),
		Tasks: timer.NewTaskSet(sched),
	})

	components.Flash.SetValue(player, components.FlashData{
		Alpha: 1,
		Scale: 1,
	})

	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return player
}
