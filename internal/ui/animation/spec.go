package animation

import (
	"math"
	"time"
)

// Easing maps elapsed fraction t in [0, 1] to interpolation progress.
type Easing func(t float64) float64

// Linear advances at a constant rate.
func Linear(t float64) float64 {
	return t
}

// Decelerate starts fast and slows to rest: 1 - (1 - t)^(2*factor).
func Decelerate(factor float64) Easing {
	if factor <= 0 {
		factor = 1
	}
	if factor == 1 {
		return func(t float64) float64 {
			return 1 - (1-t)*(1-t)
		}
	}
	return func(t float64) float64 {
		return 1 - math.Pow(1-t, 2*factor)
	}
}

// Config contains transition timing values.
type Config struct {
	Duration      time.Duration
	FrameInterval time.Duration
	Easing        Easing
}

// Session is a single in-flight transition between two values.
type Session struct {
	From     float64
	To       float64
	Start    time.Time
	Duration time.Duration
	Easing   Easing
}

// Fraction returns the elapsed share of the session clamped to [0, 1].
func (session Session) Fraction(now time.Time) float64 {
	if session.Duration <= 0 {
		return 1
	}
	elapsed := now.Sub(session.Start)
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= session.Duration {
		return 1
	}
	return float64(elapsed) / float64(session.Duration)
}

// Done reports whether the session has reached its end at now.
func (session Session) Done(now time.Time) bool {
	return session.Fraction(now) >= 1
}

// ValueAt returns the interpolated value at now. The final value is exactly To.
func (session Session) ValueAt(now time.Time) float64 {
	fraction := session.Fraction(now)
	if fraction >= 1 {
		return session.To
	}
	easing := session.Easing
	if easing == nil {
		easing = Linear
	}
	return session.From + easing(fraction)*(session.To-session.From)
}
