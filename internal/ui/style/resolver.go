package style

import "progressring/internal/core/model"

// Resolver owns the gradient and the two paints that share it.
// The gradient is rebuilt only on Resize.
type Resolver struct {
	ramp       ColorRamp
	gradient   *Gradient
	stroke     Paint
	text       Paint
	generation int
}

// NewResolver creates a resolver with no gradient until the first Resize.
func NewResolver(ramp ColorRamp, strokeWidth, textSize float64) *Resolver {
	return &Resolver{
		ramp: ramp,
		stroke: Paint{
			Style:       StyleStroke,
			StrokeWidth: strokeWidth,
			Cap:         CapButt,
			AntiAlias:   true,
		},
		text: Paint{
			Style:     StyleFill,
			AntiAlias: true,
			Align:     AlignCenter,
			TextSize:  textSize,
		},
	}
}

// Resize rebuilds the gradient around the new center and binds it to both paints.
func (resolver *Resolver) Resize(bounds model.ViewBounds) *Gradient {
	center := bounds.Center()
	resolver.gradient = BuildGradient(center.X, center.Y, resolver.ramp)
	resolver.stroke.Shader = resolver.gradient
	resolver.text.Shader = resolver.gradient
	resolver.generation++
	return resolver.gradient
}

// SetStrokeWidth updates the stroke paint width.
func (resolver *Resolver) SetStrokeWidth(width float64) {
	resolver.stroke.StrokeWidth = width
}

// SetTextSize updates the text paint size.
func (resolver *Resolver) SetTextSize(size float64) {
	resolver.text.TextSize = size
}

// StrokePaint returns the paint used for the arc.
func (resolver *Resolver) StrokePaint() Paint {
	return resolver.stroke
}

// TextPaint returns the paint used for the label.
func (resolver *Resolver) TextPaint() Paint {
	return resolver.text
}

// Gradient returns the current shader, nil before the first Resize.
func (resolver *Resolver) Gradient() *Gradient {
	return resolver.gradient
}

// Ramp returns the ramp the resolver was built with.
func (resolver *Resolver) Ramp() ColorRamp {
	return resolver.ramp
}

// Generation counts gradient rebuilds.
func (resolver *Resolver) Generation() int {
	return resolver.generation
}
