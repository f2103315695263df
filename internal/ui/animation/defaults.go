package animation

import "time"

const (
	defaultDuration      = 300 * time.Millisecond
	defaultFrameInterval = 16 * time.Millisecond
)

// DefaultConfig returns a short decelerating transition.
func DefaultConfig() Config {
	return Config{
		Duration:      defaultDuration,
		FrameInterval: defaultFrameInterval,
		Easing:        Decelerate(1),
	}
}

// Normalize fills an unset frame interval and easing. A zero Duration makes
// every transition complete on its first tick.
func (config Config) Normalize() Config {
	if config.Duration < 0 {
		config.Duration = 0
	}
	if config.FrameInterval <= 0 {
		config.FrameInterval = defaultFrameInterval
	}
	if config.Easing == nil {
		config.Easing = Decelerate(1)
	}
	return config
}
