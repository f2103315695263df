package ring

import (
	"fmt"
	"image"

	"progressring/internal/core/geometry"
	"progressring/internal/core/model"
	"progressring/internal/render"
	"progressring/internal/ui/animation"
	"progressring/internal/ui/style"
)

// InvalidLabel is shown in place of the percentage while the max value is not positive.
const InvalidLabel = "--%"

// Ring is the progress ring core. The host drives it through Measure, Draw,
// OnSizeChanged, OnAttach and OnDetach, and it asks the host to repaint
// through the invalidate callback. All methods must be called on the UI
// goroutine.
type Ring struct {
	options    Options
	state      model.ProgressState
	bounds     model.ViewBounds
	arc        model.RectF
	resolver   *style.Resolver
	controller *animation.Controller
	invalidate func()
	attached   bool
}

// Frame is the geometry of one drawn frame.
type Frame struct {
	Arc        model.RectF
	StartAngle float64
	SweepAngle float64
	Label      string
	Anchor     model.PointF
}

// New creates a ring whose transitions are ticked by scheduler.
func New(options Options, scheduler animation.Scheduler, invalidate func()) *Ring {
	options = options.normalize()
	ring := &Ring{
		options: options,
		state: model.ProgressState{
			CurrentValue: options.InitialProgress,
			MaxValue:     options.MaxValue,
			StrokeWidth:  options.StrokeWidth,
		},
		resolver:   style.NewResolver(*options.Ramp, options.StrokeWidth, options.LabelTextSize),
		invalidate: func() {},
	}
	ring.controller = animation.New(options.Animation, scheduler, ring.onTick)
	ring.controller.Jump(options.InitialProgress)
	if invalidate != nil {
		ring.invalidate = invalidate
	}
	return ring
}

// Controller exposes the animation controller, for clocks and observers.
func (ring *Ring) Controller() *animation.Controller {
	return ring.controller
}

// SetProgress animates the displayed value toward target.
func (ring *Ring) SetProgress(target float64) {
	ring.controller.SetTarget(target)
}

// Progress returns the displayed value.
func (ring *Ring) Progress() float64 {
	return ring.state.CurrentValue
}

// Target returns the value the ring is animating toward.
func (ring *Ring) Target() float64 {
	return ring.controller.Target()
}

// SetMaxValue changes the max value and requests a repaint.
func (ring *Ring) SetMaxValue(value float64) {
	ring.state.MaxValue = value
	ring.invalidate()
}

// MaxValue returns the max value.
func (ring *Ring) MaxValue() float64 {
	return ring.state.MaxValue
}

// SetLabelTextSize changes the label size and requests a repaint.
func (ring *Ring) SetLabelTextSize(size float64) {
	ring.options.LabelTextSize = size
	ring.resolver.SetTextSize(size)
	ring.invalidate()
}

// LabelTextSize returns the label size.
func (ring *Ring) LabelTextSize() float64 {
	return ring.options.LabelTextSize
}

// SetStrokeWidth changes the arc thickness and requests a repaint.
func (ring *Ring) SetStrokeWidth(width float64) {
	ring.state.StrokeWidth = width
	ring.resolver.SetStrokeWidth(width)
	ring.arc = geometry.ArcBounds(ring.bounds.Width, ring.bounds.Height, width)
	ring.invalidate()
}

// SetAnimation changes the timing of transitions started afterwards.
func (ring *Ring) SetAnimation(config animation.Config) {
	ring.controller.SetConfig(config)
}

// State returns a snapshot of the progress state.
func (ring *Ring) State() model.ProgressState {
	return ring.state
}

// Bounds returns the last size reported by the host.
func (ring *Ring) Bounds() model.ViewBounds {
	return ring.bounds
}

// ArcBounds returns the oval the arc is stroked on.
func (ring *Ring) ArcBounds() model.RectF {
	return ring.arc
}

// Gradient returns the current shader, nil until the first size change.
func (ring *Ring) Gradient() *style.Gradient {
	return ring.resolver.Gradient()
}

// Attached reports whether the host currently shows the ring.
func (ring *Ring) Attached() bool {
	return ring.attached
}

// Measure returns the side of the square the ring wants.
func (ring *Ring) Measure(width, height geometry.MeasureSpec) float64 {
	return geometry.ResolveSize(width, height, ring.options.DefaultSize)
}

// OnSizeChanged recomputes the arc bounds and rebuilds the gradient.
func (ring *Ring) OnSizeChanged(width, height float64) {
	bounds := model.ViewBounds{Width: width, Height: height}
	if bounds == ring.bounds && ring.resolver.Gradient() != nil {
		return
	}
	ring.bounds = bounds
	ring.arc = geometry.ArcBounds(width, height, ring.state.StrokeWidth)
	ring.resolver.Resize(bounds)
	ring.invalidate()
}

// OnAttach marks the ring as shown.
func (ring *Ring) OnAttach() {
	ring.attached = true
	ring.options.Logf("progress ring attached")
}

// OnDetach cancels any running transition before the surface goes away.
func (ring *Ring) OnDetach() {
	ring.controller.Cancel()
	ring.attached = false
	ring.options.Logf("progress ring detached")
}

// Frame computes the geometry for the current state.
func (ring *Ring) Frame() (Frame, error) {
	frame := Frame{
		Arc:        ring.arc,
		StartAngle: geometry.StartAngle,
		Anchor:     geometry.LabelAnchor(ring.bounds.Width, ring.bounds.Height),
		Label:      InvalidLabel,
	}
	sweep, err := geometry.SweepAngle(ring.state.CurrentValue, ring.state.MaxValue)
	if err != nil {
		return frame, err
	}
	label, err := geometry.PercentLabel(ring.state.CurrentValue, ring.state.MaxValue)
	if err != nil {
		return frame, err
	}
	frame.SweepAngle = sweep
	frame.Label = label
	return frame, nil
}

// Draw issues the arc and the label. With a non-positive max value it draws
// only the placeholder label and returns the configuration error.
func (ring *Ring) Draw(canvas render.Canvas) error {
	if ring.bounds.Empty() {
		return nil
	}
	frame, err := ring.Frame()
	if err != nil {
		canvas.DrawText(frame.Label, frame.Anchor.X, frame.Anchor.Y, ring.resolver.TextPaint())
		return fmt.Errorf("draw progress ring: %w", err)
	}
	canvas.DrawArc(frame.Arc, frame.StartAngle, frame.SweepAngle, false, ring.resolver.StrokePaint())
	canvas.DrawText(frame.Label, frame.Anchor.X, frame.Anchor.Y, ring.resolver.TextPaint())
	return nil
}

// Render paints the current frame into a new pixelWidth x pixelHeight image.
// scale converts view units to pixels.
func (ring *Ring) Render(pixelWidth, pixelHeight int, scale float64) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, max(pixelWidth, 0), max(pixelHeight, 0)))
	if pixelWidth <= 0 || pixelHeight <= 0 {
		return img, nil
	}

	raster := render.NewRaster(img, scale)
	defer raster.Close()

	if err := ring.Draw(raster); err != nil {
		return img, err
	}
	return img, raster.Err()
}

func (ring *Ring) onTick() {
	ring.state.CurrentValue = ring.controller.Value()
	ring.invalidate()
}
