// Package render defines the drawing surface the progress ring paints on and
// provides a recording surface and a software raster surface.
package render

import (
	"progressring/internal/core/model"
	"progressring/internal/ui/style"
)

// Canvas receives draw commands in view coordinates.
type Canvas interface {
	// DrawArc strokes or fills an arc of the oval inscribed in bounds. Angles
	// are in degrees, zero at 3 o'clock and positive clockwise. Sweeps beyond
	// a full turn or below zero are accepted.
	DrawArc(bounds model.RectF, startAngle, sweepAngle float64, useCenter bool, paint style.Paint)
	// DrawText draws text with its baseline at y, aligned on x per paint.Align.
	DrawText(text string, x, y float64, paint style.Paint)
}

// CommandKind identifies a recorded draw command.
type CommandKind string

const (
	CommandArc  CommandKind = "arc"
	CommandText CommandKind = "text"
)

// Command is one recorded call on a Recorder.
type Command struct {
	Kind       CommandKind
	Bounds     model.RectF
	StartAngle float64
	SweepAngle float64
	UseCenter  bool
	Text       string
	X          float64
	Y          float64
	Paint      style.Paint
}

// Recorder is a Canvas that keeps every command it receives.
type Recorder struct {
	Commands []Command
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (recorder *Recorder) DrawArc(bounds model.RectF, startAngle, sweepAngle float64, useCenter bool, paint style.Paint) {
	recorder.Commands = append(recorder.Commands, Command{
		Kind:       CommandArc,
		Bounds:     bounds,
		StartAngle: startAngle,
		SweepAngle: sweepAngle,
		UseCenter:  useCenter,
		Paint:      paint,
	})
}

func (recorder *Recorder) DrawText(text string, x, y float64, paint style.Paint) {
	recorder.Commands = append(recorder.Commands, Command{
		Kind:  CommandText,
		Text:  text,
		X:     x,
		Y:     y,
		Paint: paint,
	})
}

// Filter returns the recorded commands of the given kind.
func (recorder *Recorder) Filter(kind CommandKind) []Command {
	var matched []Command
	for _, command := range recorder.Commands {
		if command.Kind == kind {
			matched = append(matched, command)
		}
	}
	return matched
}

// Reset drops all recorded commands.
func (recorder *Recorder) Reset() {
	recorder.Commands = nil
}
