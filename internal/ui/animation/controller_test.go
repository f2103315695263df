package animation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type controllerHarness struct {
	scheduler   *ManualScheduler
	controller  *Controller
	invalidated int
	states      []State
}

func newHarness(config Config) *controllerHarness {
	harness := &controllerHarness{
		scheduler: NewManualScheduler(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
	}
	harness.controller = New(config, harness.scheduler, func() {
		harness.invalidated++
	})
	harness.controller.SetClock(harness.scheduler.Now)
	harness.controller.SetOnStateChange(func(state State) {
		harness.states = append(harness.states, state)
	})
	return harness
}

func TestControllerRunsToTarget(t *testing.T) {
	harness := newHarness(DefaultConfig())
	controller := harness.controller

	controller.SetTarget(100)
	assert.Equal(t, StateAnimating, controller.State())
	assert.Equal(t, 0.0, controller.Value())
	assert.Equal(t, 100.0, controller.Target())
	assert.Equal(t, 1, harness.scheduler.Active())

	harness.scheduler.Advance(150 * time.Millisecond)
	assert.InDelta(t, 75, controller.Value(), 1e-9)
	assert.Equal(t, StateAnimating, controller.State())

	harness.scheduler.Advance(150 * time.Millisecond)
	assert.Equal(t, 100.0, controller.Value())
	assert.Equal(t, StateIdle, controller.State())
	assert.Equal(t, 0, harness.scheduler.Active())
	assert.Equal(t, []State{StateAnimating, StateIdle}, harness.states)
}

func TestControllerPinsFinalValueExactly(t *testing.T) {
	harness := newHarness(Config{Duration: 300 * time.Millisecond, Easing: Decelerate(1.7)})

	harness.controller.SetTarget(0.1 + 0.2)
	harness.scheduler.Advance(299 * time.Millisecond)
	assert.NotEqual(t, 0.1+0.2, harness.controller.Value())

	harness.scheduler.Advance(5 * time.Millisecond)
	assert.Equal(t, 0.1+0.2, harness.controller.Value())
}

func TestControllerSupersedeIsContinuous(t *testing.T) {
	harness := newHarness(DefaultConfig())
	controller := harness.controller

	controller.SetTarget(100)
	first, ok := controller.Session()
	require.True(t, ok)

	harness.scheduler.Advance(100 * time.Millisecond)
	// The supersede lands between frames, at t = 0.5.
	harness.scheduler.now = harness.scheduler.now.Add(50 * time.Millisecond)
	expected := first.ValueAt(harness.scheduler.Now())
	require.InDelta(t, 75, expected, 1e-9)

	controller.SetTarget(50)
	assert.InDelta(t, expected, controller.Value(), 1e-9)

	second, ok := controller.Session()
	require.True(t, ok)
	assert.InDelta(t, expected, second.From, 1e-9)
	assert.Equal(t, 50.0, second.To)
	assert.Equal(t, 1, harness.scheduler.Active())
	assert.Equal(t, []State{StateAnimating}, harness.states)

	harness.scheduler.Advance(300 * time.Millisecond)
	assert.Equal(t, 50.0, controller.Value())
	assert.Equal(t, StateIdle, controller.State())
}

func TestControllerIgnoresTicksFromSupersededSession(t *testing.T) {
	scheduler := &recordingScheduler{}
	start := time.Unix(0, 0)
	now := start
	controller := New(DefaultConfig(), scheduler, nil)
	controller.SetClock(func() time.Time { return now })

	controller.SetTarget(100)
	controller.SetTarget(10)
	require.Len(t, scheduler.ticks, 2)
	assert.Equal(t, 1, scheduler.stopped)

	scheduler.ticks[0](start.Add(time.Second))
	assert.Equal(t, StateAnimating, controller.State())
	assert.Equal(t, 0.0, controller.Value())

	scheduler.ticks[1](start.Add(time.Second))
	assert.Equal(t, 10.0, controller.Value())
	assert.Equal(t, StateIdle, controller.State())
}

func TestControllerCancelIsIdempotent(t *testing.T) {
	harness := newHarness(DefaultConfig())

	harness.controller.Cancel()
	harness.controller.Cancel()
	assert.Equal(t, StateIdle, harness.controller.State())
	assert.Zero(t, harness.invalidated)
	assert.Empty(t, harness.states)
}

func TestControllerCancelStopsTicks(t *testing.T) {
	harness := newHarness(DefaultConfig())
	controller := harness.controller

	controller.SetTarget(100)
	harness.scheduler.Advance(150 * time.Millisecond)
	displayed := controller.Value()
	invalidated := harness.invalidated

	controller.Cancel()
	controller.Cancel()
	harness.scheduler.Advance(time.Second)

	assert.Equal(t, displayed, controller.Value())
	assert.Equal(t, invalidated, harness.invalidated)
	assert.Equal(t, StateIdle, controller.State())
	assert.Equal(t, 0, harness.scheduler.Active())
	assert.Equal(t, []State{StateAnimating, StateIdle}, harness.states)
}

func TestControllerInvalidatesEveryTick(t *testing.T) {
	harness := newHarness(DefaultConfig())

	harness.controller.SetTarget(40)
	assert.Equal(t, 1, harness.invalidated)
	for frame := 0; frame < 5; frame++ {
		harness.scheduler.Advance(16 * time.Millisecond)
	}
	assert.Equal(t, 6, harness.invalidated)
}

func TestControllerZeroDurationCompletesImmediately(t *testing.T) {
	harness := newHarness(Config{Duration: 0})

	harness.controller.SetTarget(-20)
	assert.Equal(t, -20.0, harness.controller.Value())
	assert.Equal(t, StateIdle, harness.controller.State())
	assert.Equal(t, 0, harness.scheduler.Active())
}

func TestControllerJump(t *testing.T) {
	harness := newHarness(DefaultConfig())

	harness.controller.SetTarget(100)
	harness.controller.Jump(12)
	assert.Equal(t, 12.0, harness.controller.Value())
	assert.Equal(t, StateIdle, harness.controller.State())
	assert.Equal(t, 0, harness.scheduler.Active())
}

func TestControllerRunsWithoutScheduler(t *testing.T) {
	start := time.Unix(100, 0)
	controller := New(DefaultConfig(), nil, nil)
	controller.SetClock(func() time.Time { return start })

	controller.SetTarget(10)
	controller.Tick(start.Add(time.Second))
	assert.Equal(t, 10.0, controller.Value())
}

type recordingScheduler struct {
	ticks   []TickFunc
	stopped int
}

func (scheduler *recordingScheduler) Schedule(tick TickFunc) Ticker {
	scheduler.ticks = append(scheduler.ticks, tick)
	return stopCounter{scheduler: scheduler}
}

type stopCounter struct {
	scheduler *recordingScheduler
}

func (counter stopCounter) Stop() {
	counter.scheduler.stopped++
}
