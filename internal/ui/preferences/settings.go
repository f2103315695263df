package preferences

import (
	"time"

	"progressring/internal/ui/animation"
	"progressring/internal/ui/ring"
)

// SchedulerKind selects what delivers animation ticks.
type SchedulerKind string

const (
	// SchedulerFyne ticks from fyne's animation runner.
	SchedulerFyne SchedulerKind = "fyne"
	// SchedulerTicker ticks from a timer goroutine at the frame interval and
	// posts each tick to the UI thread.
	SchedulerTicker SchedulerKind = "ticker"
)

// Settings defines editable user preferences.
type Settings struct {
	MaxValue          float64
	StrokeWidth       float64
	LabelTextSize     float64
	DefaultSize       float64
	AnimationDuration time.Duration
	Step              float64
	Scheduler         SchedulerKind
}

// DefaultSettings returns default settings for the progress ring demo.
func DefaultSettings() Settings {
	return Settings{
		MaxValue:          100,
		StrokeWidth:       20,
		LabelTextSize:     20,
		DefaultSize:       100,
		AnimationDuration: 300 * time.Millisecond,
		Step:              10,
		Scheduler:         SchedulerFyne,
	}
}

// AnimationConfig converts settings to the controller timing.
func (settings Settings) AnimationConfig() animation.Config {
	config := animation.DefaultConfig()
	config.Duration = settings.AnimationDuration
	return config
}

// RingOptions converts settings to ring options.
func (settings Settings) RingOptions() ring.Options {
	options := ring.DefaultOptions()
	options.MaxValue = settings.MaxValue
	options.StrokeWidth = settings.StrokeWidth
	options.LabelTextSize = settings.LabelTextSize
	options.DefaultSize = settings.DefaultSize
	options.Animation = settings.AnimationConfig()
	return options
}

// NewScheduler builds the tick source named by Scheduler. Unknown kinds fall
// back to fyne's animation runner.
func (settings Settings) NewScheduler() animation.Scheduler {
	if settings.Scheduler == SchedulerTicker {
		return animation.NewTickerScheduler(settings.AnimationConfig().Normalize().FrameInterval, nil)
	}
	return animation.NewFyneScheduler()
}
