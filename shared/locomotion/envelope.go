package locomotion

import "time"

// Envelope is the set of physics parameters bound to a Mode. It is always
// applied whole.
type Envelope struct {
	GravityScale float64 // multiplier on world gravity; 0 cancels free fall
	DragX        float64 // exponential decay rate per second
	DragY        float64
	MaxSpeedX    float64 // px/s, 0 means uncapped
	MaxSpeedY    float64
	// Impulse is the upward speed set by one discrete swim or ghost flap.
	Impulse         float64
	ImpulseInterval time.Duration
	// Collision is false when solid-surface response is suspended.
	Collision bool
}

// Envelopes maps every Mode to its envelope.
type Envelopes [ModeCount]Envelope

// For returns the envelope for m, falling back to Grounded for an invalid mode.
func (e Envelopes) For(m Mode) Envelope {
	if !m.Valid() {
		return e[Grounded]
	}
	return e[m]
}
