package utils

import "math"

// Easing functions take a progress t in [0, 1] and return the eased progress.
// See https://easings.net/

// EaseOutCubic starts fast and slows down: 1 - (1-t)^3.
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseOutQuad is a softer EaseOutCubic: 1 - (1-t)^2.
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// Progress converts elapsed/duration to a progress clamped to [0, 1].
// A non-positive duration is already complete.
func Progress(elapsed, duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	return Clamp01(elapsed / duration)
}

// Clamp01 clamps v to [0, 1].
func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Lerp interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
