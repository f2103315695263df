package style

import (
	"image"
	"image/color"
	"math"

	"progressring/internal/core/model"
)

// Gradient is an angular color transition around a center point.
// Angle zero points along +x and angles grow clockwise in screen space.
// Colors are evenly spaced over the full turn.
type Gradient struct {
	center model.PointF
	colors []color.NRGBA
}

// BuildGradient creates a sweep gradient centered at (centerX, centerY).
func BuildGradient(centerX, centerY float64, ramp ColorRamp) *Gradient {
	return &Gradient{
		center: model.PointF{X: centerX, Y: centerY},
		colors: ramp.Colors(),
	}
}

// Center returns the gradient center.
func (gradient *Gradient) Center() model.PointF {
	return gradient.center
}

// Colors returns the stop colors in order.
func (gradient *Gradient) Colors() []color.NRGBA {
	colors := make([]color.NRGBA, len(gradient.colors))
	copy(colors, gradient.colors)
	return colors
}

// Offsets returns the implicit, evenly spaced stop positions.
func (gradient *Gradient) Offsets() []float64 {
	count := len(gradient.colors)
	offsets := make([]float64, count)
	if count == 1 {
		return offsets
	}
	for index := range offsets {
		offsets[index] = float64(index) / float64(count-1)
	}
	return offsets
}

// ColorAt returns the color at (x, y) in view coordinates.
func (gradient *Gradient) ColorAt(x, y float64) color.NRGBA {
	if len(gradient.colors) == 0 {
		return color.NRGBA{}
	}
	dx := x - gradient.center.X
	dy := y - gradient.center.Y
	if dx == 0 && dy == 0 {
		return gradient.colors[0]
	}

	angle := math.Atan2(dy, dx)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return gradient.colorAtOffset(angle / (2 * math.Pi))
}

func (gradient *Gradient) colorAtOffset(offset float64) color.NRGBA {
	last := len(gradient.colors) - 1
	if last == 0 || offset <= 0 {
		return gradient.colors[0]
	}
	if offset >= 1 {
		return gradient.colors[last]
	}
	position := offset * float64(last)
	index := int(position)
	return lerpColor(gradient.colors[index], gradient.colors[index+1], position-float64(index))
}

// Image exposes the gradient as an unbounded image for rasterizers. Pixel
// coordinates are divided by scale to get back to view coordinates.
func (gradient *Gradient) Image(scale float64) image.Image {
	if scale <= 0 {
		scale = 1
	}
	return &gradientImage{gradient: gradient, scale: scale}
}

type gradientImage struct {
	gradient *Gradient
	scale    float64
}

func (img *gradientImage) ColorModel() color.Model {
	return color.NRGBAModel
}

func (img *gradientImage) Bounds() image.Rectangle {
	const extent = 1 << 24
	return image.Rect(-extent, -extent, extent, extent)
}

func (img *gradientImage) At(x, y int) color.Color {
	return img.gradient.ColorAt((float64(x)+0.5)/img.scale, (float64(y)+0.5)/img.scale)
}

func lerpColor(from, to color.NRGBA, t float64) color.NRGBA {
	return color.NRGBA{
		R: lerpChannel(from.R, to.R, t),
		G: lerpChannel(from.G, to.G, t),
		B: lerpChannel(from.B, to.B, t),
		A: lerpChannel(from.A, to.A, t),
	}
}

func lerpChannel(from, to uint8, t float64) uint8 {
	return uint8(math.Round(float64(from) + (float64(to)-float64(from))*t))
}
