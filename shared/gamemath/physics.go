package gamemath

import "math"

// ClampSpeed clamps a value to [-max, max]. A non-positive max disables the cap.
func ClampSpeed(speed, max float64) float64 {
	if max <= 0 {
		return speed
	}
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Damp decays v toward zero at an exponential rate per second.
func Damp(v, rate, dt float64) float64 {
	if rate <= 0 || dt <= 0 {
		return v
	}
	return v * math.Exp(-rate*dt)
}

// Approach moves v toward target with exponential smoothing.
func Approach(v, target, rate, dt float64) float64 {
	if rate <= 0 || dt <= 0 {
		return v
	}
	return target + (v-target)*math.Exp(-rate*dt)
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Axis folds two opposing buttons into -1, 0 or 1.
func Axis(negative, positive bool) float64 {
	switch {
	case positive && !negative:
		return 1
	case negative && !positive:
		return -1
	}
	return 0
}
