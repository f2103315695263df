package ring

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"progressring/internal/core/geometry"
	"progressring/internal/ui/animation"
)

// Widget hosts a Ring inside fyne.
type Widget struct {
	widget.BaseWidget

	ring    *Ring
	lastErr string
}

// NewWidget creates a ring widget animated by the fyne animation runner.
func NewWidget(options Options) *Widget {
	return NewWidgetWithScheduler(options, animation.NewFyneScheduler())
}

// NewWidgetWithScheduler creates a ring widget ticked by scheduler.
func NewWidgetWithScheduler(options Options, scheduler animation.Scheduler) *Widget {
	ringWidget := &Widget{}
	ringWidget.ring = New(options, scheduler, ringWidget.Refresh)
	ringWidget.ExtendBaseWidget(ringWidget)
	return ringWidget
}

// Ring returns the core driven by this widget.
func (ringWidget *Widget) Ring() *Ring {
	return ringWidget.ring
}

// SetProgress animates toward target.
func (ringWidget *Widget) SetProgress(target float64) {
	ringWidget.ring.SetProgress(target)
}

// Progress returns the displayed value.
func (ringWidget *Widget) Progress() float64 {
	return ringWidget.ring.Progress()
}

// SetMaxValue changes the max value.
func (ringWidget *Widget) SetMaxValue(value float64) {
	ringWidget.ring.SetMaxValue(value)
}

// SetLabelTextSize changes the label size.
func (ringWidget *Widget) SetLabelTextSize(size float64) {
	ringWidget.ring.SetLabelTextSize(size)
}

// SetStrokeWidth changes the arc thickness.
func (ringWidget *Widget) SetStrokeWidth(width float64) {
	ringWidget.ring.SetStrokeWidth(width)
}

// CreateRenderer attaches the ring and returns its raster-backed renderer.
func (ringWidget *Widget) CreateRenderer() fyne.WidgetRenderer {
	ringWidget.ExtendBaseWidget(ringWidget)
	renderer := &ringRenderer{widget: ringWidget}
	renderer.raster = canvas.NewRaster(renderer.generate)
	ringWidget.ring.OnAttach()
	return renderer
}

func (ringWidget *Widget) logDrawError(err error) {
	if err == nil {
		ringWidget.lastErr = ""
		return
	}
	if err.Error() == ringWidget.lastErr {
		return
	}
	ringWidget.lastErr = err.Error()
	ringWidget.ring.options.Logf("progress ring: %v", err)
}

type ringRenderer struct {
	widget *Widget
	raster *canvas.Raster
}

func (renderer *ringRenderer) Layout(size fyne.Size) {
	renderer.raster.Resize(size)
	renderer.raster.Move(fyne.NewPos(0, 0))
	renderer.widget.ring.OnSizeChanged(float64(size.Width), float64(size.Height))
}

func (renderer *ringRenderer) MinSize() fyne.Size {
	side := float32(renderer.widget.ring.Measure(geometry.Unspecified(), geometry.Unspecified()))
	return fyne.NewSize(side, side)
}

func (renderer *ringRenderer) Refresh() {
	renderer.raster.Refresh()
}

func (renderer *ringRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{renderer.raster}
}

func (renderer *ringRenderer) Destroy() {
	renderer.widget.ring.OnDetach()
}

func (renderer *ringRenderer) generate(pixelWidth, pixelHeight int) image.Image {
	size := renderer.widget.Size()
	if size.Width <= 0 || pixelWidth <= 0 {
		return image.NewRGBA(image.Rect(0, 0, max(pixelWidth, 0), max(pixelHeight, 0)))
	}

	img, err := renderer.widget.ring.Render(pixelWidth, pixelHeight, float64(pixelWidth)/float64(size.Width))
	renderer.widget.logDrawError(err)
	return img
}
