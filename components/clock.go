package components

import (
	"time"

	"github.com/automoto/tidewalker/timer"
	"github.com/yohamta/donburi"
)

// ClockData drives simulated time. Every system reads Delta for the frame
// in progress.
type ClockData struct {
	Scheduler *timer.Scheduler
	Delta     time.Duration
	Frame     uint64
}

var Clock = donburi.NewComponentType[ClockData]()

// Now returns the scheduler's monotonic time.
func (c *ClockData) Now() time.Duration {
	return c.Scheduler.Now()
}

// Seconds returns Delta as float seconds.
func (c *ClockData) Seconds() float64 {
	return c.Delta.Seconds()
}
