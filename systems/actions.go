package systems

import (
	"math"
	"time"

	"github.com/automoto/tidewalker/components"
	cfg "github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/shared/locomotion"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// handleThrowInput fires the projectile action on a fresh press. Dropped
// silently when locked, on cooldown, or on a ladder.
func handleThrowInput(e *donburi.Entry, input *components.InputData, t time.Duration) {
	if !GetAction(input, cfg.ActionThrow).JustPressed {
		return
	}
	loco := components.Locomotion.Get(e)
	if loco.State.ActionLocked() || loco.State.IsClimbing() {
		return
	}
	if !loco.Cooldowns.Throw.Ready(t, cfg.Actions.ThrowCooldown) {
		return
	}

	loco.State = locomotion.Apply(loco.State, locomotion.ThrowStart)
	loco.Cooldowns.Throw.Mark(t)
	loco.Tasks.After(cfg.Actions.ThrowLock, func() {
		releaseAction(e, locomotion.ThrowEnd)
	})
	emitAt(e, components.EventThrown)
	logger.Debug("throw", zap.Duration("at", t))
}

// handleBlowInput fires the area action. It needs the body grounded,
// standing still and out of water and off ladders.
func handleBlowInput(e *donburi.Entry, input *components.InputData, t time.Duration) {
	if !GetAction(input, cfg.ActionBlow).JustPressed {
		return
	}
	loco := components.Locomotion.Get(e)
	physics := components.Physics.Get(e)
	if loco.State.ActionLocked() || !canBlow(loco.State, physics) {
		return
	}
	if !loco.Cooldowns.Blow.Ready(t, cfg.Actions.BlowCooldown) {
		return
	}

	loco.State = locomotion.Apply(loco.State, locomotion.BlowStart)
	loco.Cooldowns.Blow.Mark(t)
	loco.Tasks.After(cfg.Actions.BlowLock, func() {
		releaseAction(e, locomotion.BlowEnd)
	})
	emitAt(e, components.EventBlown)
	logger.Debug("blow", zap.Duration("at", t))
}

func canBlow(s locomotion.State, physics *components.PhysicsData) bool {
	if s.IsSwimming() || s.IsClimbing() {
		return false
	}
	return physics.Grounded() && math.Abs(physics.SpeedX) < cfg.Actions.StationaryEpsilon
}

func releaseAction(e *donburi.Entry, sig locomotion.Signal) {
	if !e.Valid() {
		return
	}
	loco := components.Locomotion.Get(e)
	loco.State = locomotion.Apply(loco.State, sig)
}
