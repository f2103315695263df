package preferences

import (
	"math"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window      fyne.Window
	settings    Settings
	onSave      func(Settings)
	maxValue    *widget.Entry
	strokeWidth *widget.Entry
	labelSize   *widget.Entry
	duration    *widget.Entry
	step        *widget.Entry
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Progress Ring Settings")

	prefs := &Window{
		window:      window,
		onSave:      onSave,
		maxValue:    widget.NewEntry(),
		strokeWidth: widget.NewEntry(),
		labelSize:   widget.NewEntry(),
		duration:    widget.NewEntry(),
		step:        widget.NewEntry(),
	}
	prefs.UpdateSettings(settings)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Ring", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Max value"), prefs.maxValue),
		container.NewHBox(widget.NewLabel("Stroke width"), prefs.strokeWidth, widget.NewLabel("px")),
		container.NewHBox(widget.NewLabel("Label size"), prefs.labelSize, widget.NewLabel("px")),
		widget.NewLabelWithStyle("Animation", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Duration"), prefs.duration, widget.NewLabel("ms")),
		container.NewHBox(widget.NewLabel("Step"), prefs.step),
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 320))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.maxValue.SetText(formatFloat(settings.MaxValue))
	prefs.strokeWidth.SetText(formatFloat(settings.StrokeWidth))
	prefs.labelSize.SetText(formatFloat(settings.LabelTextSize))
	prefs.duration.SetText(strconv.FormatInt(settings.AnimationDuration.Milliseconds(), 10))
	prefs.step.SetText(formatFloat(settings.Step))
}

// Settings returns the last saved settings.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

func (prefs *Window) handleSave() {
	prefs.settings = prefs.collect()
	if prefs.onSave != nil {
		prefs.onSave(prefs.settings)
	}
	prefs.window.Hide()
}

// collect reads the form. Unparsable or non-positive entries keep their
// previous value, except duration which may be zero.
func (prefs *Window) collect() Settings {
	settings := prefs.settings

	if value, ok := parsePositiveFloat(prefs.maxValue.Text); ok {
		settings.MaxValue = value
	}
	if value, ok := parsePositiveFloat(prefs.strokeWidth.Text); ok {
		settings.StrokeWidth = value
	}
	if value, ok := parsePositiveFloat(prefs.labelSize.Text); ok {
		settings.LabelTextSize = value
	}
	if millis, err := strconv.Atoi(prefs.duration.Text); err == nil && millis >= 0 {
		settings.AnimationDuration = time.Duration(millis) * time.Millisecond
	}
	if value, ok := parsePositiveFloat(prefs.step.Text); ok {
		settings.Step = value
	}
	return settings
}

func parsePositiveFloat(value string) (float64, bool) {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || !(parsed > 0) || math.IsInf(parsed, 1) {
		return 0, false
	}
	return parsed, true
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
