package dashboard

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"progressring/internal/ui/animation"
	"progressring/internal/ui/preferences"
	"progressring/internal/ui/ring"
)

// Window shows a progress ring with controls to drive it.
type Window struct {
	window      fyne.Window
	ring        *ring.Widget
	slider      *widget.Slider
	targetLabel *canvas.Text
	stateLabel  *canvas.Text
	settings    preferences.Settings
	syncing     bool
	onProgress  func(target float64)
	onState     func(animation.State)
}

// New creates the dashboard window around ringWidget.
func New(app fyne.App, settings preferences.Settings, ringWidget *ring.Widget) *Window {
	window := app.NewWindow("Progress Ring")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	targetLabel := canvas.NewText("", color.NRGBA{R: 120, G: 120, B: 120, A: 255})
	targetLabel.Alignment = fyne.TextAlignLeading
	targetLabel.TextSize = 13

	stateLabel := canvas.NewText(string(animation.StateIdle), color.NRGBA{R: 120, G: 120, B: 120, A: 255})
	stateLabel.Alignment = fyne.TextAlignTrailing
	stateLabel.TextSize = 13

	dashboard := &Window{
		window:      window,
		ring:        ringWidget,
		slider:      widget.NewSlider(0, settings.MaxValue),
		targetLabel: targetLabel,
		stateLabel:  stateLabel,
		settings:    settings,
	}
	dashboard.slider.Step = 0.01
	dashboard.slider.OnChanged = func(value float64) {
		if dashboard.syncing {
			return
		}
		dashboard.SetProgress(value)
	}

	ringWidget.Ring().Controller().SetOnStateChange(dashboard.handleStateChange)

	controls := container.NewVBox(
		dashboard.slider,
		container.NewGridWithColumns(4,
			widget.NewButton("Back", dashboard.StepBack),
			widget.NewButton("Forward", dashboard.StepForward),
			widget.NewButton("Reset", dashboard.Reset),
			widget.NewButton("Fill", dashboard.Fill),
		),
		container.NewGridWithColumns(2, targetLabel, stateLabel),
	)
	content := container.NewBorder(nil, controls, nil, nil, container.New(&squareLayout{}, ringWidget))

	window.SetContent(content)
	window.Resize(fyne.NewSize(320, 420))
	dashboard.syncControls(ringWidget.Ring().Target())

	return dashboard
}

// Show displays the window.
func (dashboard *Window) Show() {
	dashboard.window.Show()
	dashboard.window.RequestFocus()
}

// Hide hides the window.
func (dashboard *Window) Hide() {
	dashboard.window.Hide()
}

// SetCloseIntercept forwards to the underlying window.
func (dashboard *Window) SetCloseIntercept(handler func()) {
	dashboard.window.SetCloseIntercept(handler)
}

// SetOnProgress sets a callback fired with every new target.
func (dashboard *Window) SetOnProgress(handler func(target float64)) {
	dashboard.onProgress = handler
}

// SetOnStateChange sets a callback fired when the ring starts or stops animating.
func (dashboard *Window) SetOnStateChange(handler func(animation.State)) {
	dashboard.onState = handler
}

// SetProgress animates the ring toward target, clamped to [0, max].
func (dashboard *Window) SetProgress(target float64) {
	target = clamp(target, 0, dashboard.settings.MaxValue)
	dashboard.ring.SetProgress(target)
	dashboard.syncControls(target)
	if dashboard.onProgress != nil {
		dashboard.onProgress(target)
	}
}

// Target returns the value the ring is heading to.
func (dashboard *Window) Target() float64 {
	return dashboard.ring.Ring().Target()
}

// StepForward advances the target by one step.
func (dashboard *Window) StepForward() {
	dashboard.SetProgress(dashboard.Target() + dashboard.settings.Step)
}

// StepBack moves the target back by one step.
func (dashboard *Window) StepBack() {
	dashboard.SetProgress(dashboard.Target() - dashboard.settings.Step)
}

// Reset animates to zero.
func (dashboard *Window) Reset() {
	dashboard.SetProgress(0)
}

// Fill animates to the max value.
func (dashboard *Window) Fill() {
	dashboard.SetProgress(dashboard.settings.MaxValue)
}

// ApplySettings pushes new settings into the ring and the controls.
func (dashboard *Window) ApplySettings(settings preferences.Settings) {
	dashboard.settings = settings
	dashboard.ring.SetMaxValue(settings.MaxValue)
	dashboard.ring.SetStrokeWidth(settings.StrokeWidth)
	dashboard.ring.SetLabelTextSize(settings.LabelTextSize)
	dashboard.ring.Ring().SetAnimation(settings.AnimationConfig())
	dashboard.slider.Max = settings.MaxValue
	dashboard.syncControls(dashboard.Target())
}

func (dashboard *Window) syncControls(target float64) {
	dashboard.syncing = true
	dashboard.slider.SetValue(clamp(target, dashboard.slider.Min, dashboard.slider.Max))
	dashboard.syncing = false
	dashboard.targetLabel.Text = fmt.Sprintf("target %.2f / %.2f", target, dashboard.settings.MaxValue)
	dashboard.targetLabel.Refresh()
}

func (dashboard *Window) handleStateChange(state animation.State) {
	dashboard.stateLabel.Text = string(state)
	dashboard.stateLabel.Refresh()
	if dashboard.onState != nil {
		dashboard.onState(state)
	}
}

func clamp(value, low, high float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

// squareLayout centers its first object in the largest square that fits.
type squareLayout struct{}

func (layout *squareLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 1 {
		return
	}
	margin := min(size.Width, size.Height) * 0.05
	side := min(size.Width, size.Height) - margin*2
	if side < 0 {
		side = 0
	}
	objects[0].Resize(fyne.NewSize(side, side))
	objects[0].Move(fyne.NewPos((size.Width-side)/2, (size.Height-side)/2))
}

func (layout *squareLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 1 {
		return fyne.NewSize(0, 0)
	}
	minSize := objects[0].MinSize()
	side := max(minSize.Width, minSize.Height)
	return fyne.NewSize(side, side)
}
