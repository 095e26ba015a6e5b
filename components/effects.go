package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlashData drives the invulnerability blink and the appear scale-in.
type FlashData struct {
	Alpha float64
	Scale float64

	Blink  *gween.Tween // alpha 1 -> low, restarted while invulnerable
	Appear *gween.Tween // scale 0 -> 1 after a relocation
}

var Flash = donburi.NewComponentType[FlashData]()
