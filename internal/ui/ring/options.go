package ring

import (
	"log"

	"progressring/internal/ui/animation"
	"progressring/internal/ui/style"
)

// Options configures a progress ring.
type Options struct {
	DefaultSize     float64
	StrokeWidth     float64
	LabelTextSize   float64
	MaxValue        float64
	InitialProgress float64
	Ramp            *style.ColorRamp
	Animation       animation.Config
	Logf            func(format string, args ...any)
}

// DefaultOptions returns a 100-unit ring with a 20-unit stroke showing 82.45 of 100.
func DefaultOptions() Options {
	return Options{
		DefaultSize:     100,
		StrokeWidth:     20,
		LabelTextSize:   20,
		MaxValue:        100,
		InitialProgress: 82.45,
		Animation:       animation.DefaultConfig(),
		Logf:            log.Printf,
	}
}

func (options Options) normalize() Options {
	defaults := DefaultOptions()
	if options.DefaultSize <= 0 {
		options.DefaultSize = defaults.DefaultSize
	}
	if options.StrokeWidth <= 0 {
		options.StrokeWidth = defaults.StrokeWidth
	}
	if options.MaxValue == 0 {
		options.MaxValue = defaults.MaxValue
	}
	if options.LabelTextSize <= 0 {
		options.LabelTextSize = defaults.LabelTextSize
	}
	if options.Ramp == nil {
		ramp := style.DefaultRamp()
		options.Ramp = &ramp
	}
	if options.Logf == nil {
		options.Logf = func(string, ...any) {}
	}
	options.Animation = options.Animation.Normalize()
	return options
}
