package style

import (
	"image/color"

	"progressring/resources"
)

// RampSize is the number of colors in a ColorRamp.
const RampSize = 5

// ColorRamp is the ordered, fixed set of colors the sweep gradient is built from.
type ColorRamp [RampSize]color.NRGBA

// DefaultRamp returns purple, purple, teal, blue, purple. The repeated purple
// at the start widens the first band before the transition to teal.
func DefaultRamp() ColorRamp {
	purple := resources.MustColor("purple")
	return ColorRamp{
		purple,
		purple,
		resources.MustColor("teal"),
		resources.MustColor("blue"),
		purple,
	}
}

// Colors returns the ramp as a slice in order.
func (ramp ColorRamp) Colors() []color.NRGBA {
	colors := make([]color.NRGBA, len(ramp))
	copy(colors, ramp[:])
	return colors
}
