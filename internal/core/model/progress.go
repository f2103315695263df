package model

// ProgressState is the authoritative state of a progress ring.
// CurrentValue is not bounded by MaxValue.
type ProgressState struct {
	CurrentValue float64
	MaxValue     float64
	StrokeWidth  float64
}

// ViewBounds is the last known container size.
type ViewBounds struct {
	Width  float64
	Height float64
}

// Center returns the midpoint of the bounds.
func (bounds ViewBounds) Center() PointF {
	return PointF{X: bounds.Width / 2, Y: bounds.Height / 2}
}

// Empty reports whether the bounds have no drawable area.
func (bounds ViewBounds) Empty() bool {
	return bounds.Width <= 0 || bounds.Height <= 0
}

// PointF is a point in view coordinates.
type PointF struct {
	X float64
	Y float64
}

// RectF is an axis-aligned rectangle given by its edges.
type RectF struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Width returns the horizontal extent.
func (rect RectF) Width() float64 {
	return rect.Right - rect.Left
}

// Height returns the vertical extent.
func (rect RectF) Height() float64 {
	return rect.Bottom - rect.Top
}

// Center returns the midpoint of the rectangle.
func (rect RectF) Center() PointF {
	return PointF{X: (rect.Left + rect.Right) / 2, Y: (rect.Top + rect.Bottom) / 2}
}
