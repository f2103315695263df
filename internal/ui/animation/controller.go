package animation

import "time"

// State is the controller mode.
type State string

const (
	StateIdle      State = "idle"
	StateAnimating State = "animating"
)

// Controller owns the displayed value and at most one transition.
// It is confined to the UI goroutine; schedulers deliver ticks there.
type Controller struct {
	config     Config
	scheduler  Scheduler
	now        func() time.Time
	invalidate func()
	onState    func(State)

	value     float64
	session   *Session
	ticker    Ticker
	sessionID uint64
}

// New creates an idle controller. invalidate is called after every change
// to the displayed value.
func New(config Config, scheduler Scheduler, invalidate func()) *Controller {
	if invalidate == nil {
		invalidate = func() {}
	}
	return &Controller{
		config:     config.Normalize(),
		scheduler:  scheduler,
		now:        time.Now,
		invalidate: invalidate,
	}
}

// SetClock replaces the time source used to start and supersede sessions.
func (controller *Controller) SetClock(now func() time.Time) {
	if now == nil {
		now = time.Now
	}
	controller.now = now
}

// SetOnStateChange sets a callback fired on Idle/Animating transitions.
func (controller *Controller) SetOnStateChange(handler func(State)) {
	controller.onState = handler
}

// SetConfig replaces the timing used by sessions started after the call.
func (controller *Controller) SetConfig(config Config) {
	controller.config = config.Normalize()
}

// Config returns the active timing configuration.
func (controller *Controller) Config() Config {
	return controller.config
}

// Value returns the currently displayed value.
func (controller *Controller) Value() float64 {
	return controller.value
}

// Target returns where the displayed value is heading.
func (controller *Controller) Target() float64 {
	if controller.session != nil {
		return controller.session.To
	}
	return controller.value
}

// State returns Idle or Animating.
func (controller *Controller) State() State {
	if controller.session != nil {
		return StateAnimating
	}
	return StateIdle
}

// Session returns a copy of the active session.
func (controller *Controller) Session() (Session, bool) {
	if controller.session == nil {
		return Session{}, false
	}
	return *controller.session, true
}

// Jump cancels any transition and displays value immediately.
func (controller *Controller) Jump(value float64) {
	controller.Cancel()
	controller.value = value
	controller.invalidate()
}

// SetTarget starts a transition from the displayed value to target. An active
// session is cancelled first and the new one starts from wherever the old one
// was at this instant.
func (controller *Controller) SetTarget(target float64) {
	now := controller.now()
	wasIdle := controller.session == nil
	if !wasIdle {
		controller.value = controller.session.ValueAt(now)
		controller.stopTicker()
	}

	controller.sessionID++
	id := controller.sessionID
	controller.session = &Session{
		From:     controller.value,
		To:       target,
		Start:    now,
		Duration: controller.config.Duration,
		Easing:   controller.config.Easing,
	}
	if wasIdle {
		controller.notifyState(StateAnimating)
	}

	if controller.scheduler != nil {
		controller.ticker = controller.scheduler.Schedule(func(tickTime time.Time) {
			if controller.sessionID != id {
				return
			}
			controller.Tick(tickTime)
		})
	}
	controller.Tick(now)
}

// Tick advances the active session to now and requests a repaint. It returns
// the controller to Idle once the session duration has elapsed.
func (controller *Controller) Tick(now time.Time) {
	if controller.session == nil {
		return
	}
	session := *controller.session
	if !session.Done(now) {
		controller.value = session.ValueAt(now)
		controller.invalidate()
		return
	}

	controller.value = session.To
	controller.session = nil
	controller.sessionID++
	controller.stopTicker()
	controller.invalidate()
	controller.notifyState(StateIdle)
}

// Cancel discards the active session without completing it. Calling Cancel
// on an idle controller does nothing.
func (controller *Controller) Cancel() {
	if controller.session == nil {
		return
	}
	controller.session = nil
	controller.sessionID++
	controller.stopTicker()
	controller.notifyState(StateIdle)
}

func (controller *Controller) stopTicker() {
	if controller.ticker != nil {
		controller.ticker.Stop()
		controller.ticker = nil
	}
}

func (controller *Controller) notifyState(state State) {
	if controller.onState != nil {
		controller.onState(state)
	}
}
