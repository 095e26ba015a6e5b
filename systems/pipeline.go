package systems

import (
	"time"

	"github.com/automoto/tidewalker/components"
	cfg "github.com/automoto/tidewalker/config"
	"github.com/yohamta/donburi"
)

// System is one per-frame pass over the world.
type System func(w donburi.World)

// Pipeline lists the gameplay systems in execution order. UpdateClock and
// input sampling run before it.
var Pipeline = []System{
	UpdateLevelActions,
	UpdateLocomotion,
	UpdatePlayer,
	UpdatePhysics,
	UpdateCollisions,
	UpdateEffects,
}

// Step runs one whole frame of dt: timers, then the pipeline. Input must
// already be sampled.
func Step(w donburi.World, dt time.Duration) {
	if clock, ok := clockOf(w); ok {
		clock.Delta = dt
	}
	UpdateClock(w)
	for _, sys := range Pipeline {
		sys(w)
	}
}

// UpdateClock advances simulated time and runs due callbacks.
func UpdateClock(w donburi.World) {
	clock, ok := clockOf(w)
	if !ok {
		return
	}
	if clock.Delta <= 0 {
		clock.Delta = cfg.World.FixedStep
	}
	clock.Frame++
	clock.Scheduler.Advance(clock.Delta)
}

func clockOf(w donburi.World) (*components.ClockData, bool) {
	entry, ok := components.Clock.First(w)
	if !ok {
		return nil, false
	}
	return components.Clock.Get(entry), true
}

// deltaSeconds returns the frame delta in seconds, falling back to the
// fixed step when no clock exists.
func deltaSeconds(w donburi.World) float64 {
	if clock, ok := clockOf(w); ok && clock.Delta > 0 {
		return clock.Seconds()
	}
	return cfg.World.FixedStep.Seconds()
}

// now returns simulated time, or zero without a clock.
func now(w donburi.World) time.Duration {
	if clock, ok := clockOf(w); ok {
		return clock.Now()
	}
	return 0
}

func levelOf(w donburi.World) (*components.LevelData, bool) {
	entry, ok := components.Level.First(w)
	if !ok {
		return nil, false
	}
	return components.Level.Get(entry), true
}
