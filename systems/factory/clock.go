package factory

import (
	"github.com/automoto/tidewalker/archetypes"
	"github.com/automoto/tidewalker/components"
	"github.com/automoto/tidewalker/timer"
	"github.com/yohamta/donburi"
)

// CreateClock spawns the singleton clock with a fresh scheduler.
func CreateClock(w donburi.World) *donburi.Entry {
	clock := archetypes.Clock.Spawn(w)
	components.Clock.SetValue(clock, components.ClockData{
		Scheduler: timer.NewScheduler(),
	})
	return clock
}
