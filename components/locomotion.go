package components

import (
	"time"

	"github.com/automoto/tidewalker/shared/locomotion"
	"github.com/automoto/tidewalker/timer"
	"github.com/yohamta/donburi"
)

// Cooldown is a monotonic last-used timestamp for one rate-limited action.
type Cooldown struct {
	Last time.Duration
	Used bool
}

// Ready reports whether at least d has elapsed since the last use.
func (c Cooldown) Ready(now, d time.Duration) bool {
	return !c.Used || now-c.Last >= d
}

// Mark records a use at now.
func (c *Cooldown) Mark(now time.Duration) {
	c.Last = now
	c.Used = true
}

// CooldownData holds one timestamp per rate-limited action.
type CooldownData struct {
	Jump    Cooldown
	Impulse Cooldown // swim and ghost flaps
	Throw   Cooldown
	Blow    Cooldown
}

// LocomotionData owns the player's locomotion state, its cooldowns and
// every deferred callback the player has scheduled.
type LocomotionData struct {
	State     locomotion.State
	Cooldowns CooldownData
	Tasks     *timer.TaskSet

	InvulnTask     timer.ID
	StaggerTask    timer.ID
	RelocationTask timer.ID
}

var Locomotion = donburi.NewComponentType[LocomotionData]()
