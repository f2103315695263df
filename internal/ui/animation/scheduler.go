package animation

import (
	"context"
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// TickFunc receives the frame time of one animation tick.
type TickFunc func(now time.Time)

// Scheduler delivers repeated ticks on the UI goroutine until stopped.
type Scheduler interface {
	Schedule(tick TickFunc) Ticker
}

// Ticker stops the tick stream it was returned for. Stop is idempotent.
type Ticker interface {
	Stop()
}

// FyneScheduler drives ticks from the fyne animation runner, which calls
// back on the main goroutine once per frame.
type FyneScheduler struct{}

// NewFyneScheduler returns a scheduler bound to the running fyne app.
func NewFyneScheduler() *FyneScheduler {
	return &FyneScheduler{}
}

// Schedule starts a repeating fyne animation that forwards each frame.
func (scheduler *FyneScheduler) Schedule(tick TickFunc) Ticker {
	animation := fyne.NewAnimation(time.Second, func(float32) {
		tick(time.Now())
	})
	animation.Curve = fyne.AnimationLinear
	animation.RepeatCount = fyne.AnimationRepeatForever
	animation.Start()
	return &fyneTicker{animation: animation}
}

type fyneTicker struct {
	once      sync.Once
	animation *fyne.Animation
}

func (ticker *fyneTicker) Stop() {
	ticker.once.Do(ticker.animation.Stop)
}

// TickerScheduler runs a time.Ticker on its own goroutine and hands each tick
// to post, which must run the callback on the UI goroutine (fyne.Do in apps).
type TickerScheduler struct {
	interval time.Duration
	post     func(func())
}

// NewTickerScheduler creates a ticker-driven scheduler.
func NewTickerScheduler(interval time.Duration, post func(func())) *TickerScheduler {
	if interval <= 0 {
		interval = defaultFrameInterval
	}
	if post == nil {
		post = fyne.Do
	}
	return &TickerScheduler{interval: interval, post: post}
}

// Schedule launches the ticking loop.
func (scheduler *TickerScheduler) Schedule(tick TickFunc) Ticker {
	runCtx, cancel := context.WithCancel(context.Background())
	go scheduler.run(runCtx, tick)
	return &contextTicker{cancel: cancel}
}

func (scheduler *TickerScheduler) run(ctx context.Context, tick TickFunc) {
	ticker := time.NewTicker(scheduler.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case tickTime := <-ticker.C:
			scheduler.post(func() {
				if ctx.Err() != nil {
					return
				}
				tick(tickTime)
			})
		}
	}
}

type contextTicker struct {
	cancel context.CancelFunc
}

func (ticker *contextTicker) Stop() {
	ticker.cancel()
}

// ManualScheduler delivers ticks only when Advance is called. Headless
// renderers use it to step an animation frame by frame.
type ManualScheduler struct {
	now     time.Time
	tickers []*manualTicker
}

// NewManualScheduler creates a scheduler whose clock starts at start.
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start}
}

// Now returns the scheduler clock. Pass it to Controller.SetClock.
func (scheduler *ManualScheduler) Now() time.Time {
	return scheduler.now
}

// Schedule registers tick for delivery on Advance.
func (scheduler *ManualScheduler) Schedule(tick TickFunc) Ticker {
	ticker := &manualTicker{tick: tick}
	scheduler.tickers = append(scheduler.tickers, ticker)
	return ticker
}

// Advance moves the clock forward and ticks every active subscriber once.
func (scheduler *ManualScheduler) Advance(delta time.Duration) {
	scheduler.now = scheduler.now.Add(delta)
	tickers := append([]*manualTicker(nil), scheduler.tickers...)
	for _, ticker := range tickers {
		if !ticker.stopped {
			ticker.tick(scheduler.now)
		}
	}
	scheduler.prune()
}

// Active returns the number of tick streams not yet stopped.
func (scheduler *ManualScheduler) Active() int {
	scheduler.prune()
	return len(scheduler.tickers)
}

func (scheduler *ManualScheduler) prune() {
	active := scheduler.tickers[:0]
	for _, ticker := range scheduler.tickers {
		if !ticker.stopped {
			active = append(active, ticker)
		}
	}
	scheduler.tickers = active
}

type manualTicker struct {
	tick    TickFunc
	stopped bool
}

func (ticker *manualTicker) Stop() {
	ticker.stopped = true
}
