package systems

import (
	"github.com/automoto/tidewalker/components"
	cfg "github.com/automoto/tidewalker/config"
	"github.com/automoto/tidewalker/shared/locomotion"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// Damageable is implemented by anything that can receive a hit.
type Damageable interface {
	// TakeDamage reports whether the hit was accepted.
	TakeDamage(sourceX float64) bool
}

// applyDamage accepts a hit only while vulnerable: it starts the
// invulnerability window, knocks the body back against its facing for the
// stagger window and emits a Hit event. Hits during the window change
// nothing.
func applyDamage(e *donburi.Entry, sourceX float64) bool {
	loco := components.Locomotion.Get(e)
	if loco.State.Invulnerable {
		return false
	}
	loco.State = locomotion.Apply(loco.State, locomotion.HitTaken)
	startInvulnerability(e)
	startStagger(e)

	physics := components.Physics.Get(e)
	player := components.Player.Get(e)
	physics.SpeedX = -player.Direction.X * cfg.Invuln.KnockbackX
	physics.SpeedY = -cfg.Invuln.KnockbackY

	obj := components.Object.Get(e).Object
	components.Events.Get(e).Emit(components.Event{
		Kind:    components.EventHit,
		X:       obj.X,
		Y:       obj.Y,
		SourceX: sourceX,
	})
	logger.Info("player hit",
		zap.Float64("source_x", sourceX),
		zap.Float64("x", obj.X),
		zap.String("mode", loco.State.Mode.String()),
	)
	return true
}

// startInvulnerability schedules the only path back to vulnerable.
func startInvulnerability(e *donburi.Entry) {
	loco := components.Locomotion.Get(e)
	loco.InvulnTask = loco.Tasks.After(cfg.Invuln.Duration, func() {
		if !e.Valid() {
			return
		}
		l := components.Locomotion.Get(e)
		l.State = locomotion.Apply(l.State, locomotion.InvulnerabilityExpired)
		l.InvulnTask = 0
		logger.Debug("invulnerability expired")
	})
}

// startStagger hands the body's velocity to the knockback until the
// stagger window ends.
func startStagger(e *donburi.Entry) {
	loco := components.Locomotion.Get(e)
	if cfg.Invuln.StaggerTime <= 0 {
		return
	}
	loco.State = locomotion.Apply(loco.State, locomotion.StaggerStart)
	loco.StaggerTask = loco.Tasks.After(cfg.Invuln.StaggerTime, func() {
		if !e.Valid() {
			return
		}
		l := components.Locomotion.Get(e)
		l.State = locomotion.Apply(l.State, locomotion.StaggerEnd)
		l.StaggerTask = 0
	})
}
