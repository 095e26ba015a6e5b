package systems

import (
	"github.com/automoto/tidewalker/components"
	cfg "github.com/automoto/tidewalker/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

const blinkMinAlpha = 0.25

// UpdateEffects advances the invulnerability blink and the appear scale-in.
func UpdateEffects(w donburi.World) {
	dt := float32(deltaSeconds(w))
	components.Flash.Each(w, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		updateBlink(e, flash, dt)

		if flash.Appear != nil {
			scale, done := flash.Appear.Update(dt)
			flash.Scale = float64(scale)
			if done {
				flash.Appear = nil
				flash.Scale = 1
			}
		}
	})
}

func updateBlink(e *donburi.Entry, flash *components.FlashData, dt float32) {
	if !e.HasComponent(components.Locomotion) || !components.Locomotion.Get(e).State.Invulnerable {
		flash.Blink = nil
		flash.Alpha = 1
		return
	}
	if flash.Blink == nil {
		flash.Blink = gween.New(1, blinkMinAlpha, float32(cfg.Invuln.BlinkPeriod.Seconds()), ease.Linear)
	}
	alpha, done := flash.Blink.Update(dt)
	flash.Alpha = float64(alpha)
	if done {
		flash.Blink.Reset()
	}
}

// startAppear scales the body in from nothing after a relocation.
func startAppear(e *donburi.Entry) {
	flash := components.Flash.Get(e)
	flash.Scale = 0
	flash.Appear = gween.New(0, 1, float32(cfg.Invuln.AppearTime.Seconds()), ease.OutQuad)
}

func resetFlash(e *donburi.Entry) {
	flash := components.Flash.Get(e)
	flash.Alpha = 1
	flash.Scale = 1
	flash.Blink = nil
	flash.Appear = nil
}
