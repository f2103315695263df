package geometry

// MeasureMode tells how a requested dimension constrains the view.
type MeasureMode int

const (
	MeasureUnspecified MeasureMode = iota
	MeasureExactly
	MeasureAtMost
)

// MeasureSpec is a single dimension offered by the host layout.
type MeasureSpec struct {
	Mode MeasureMode
	Size float64
}

// Exactly returns a spec that forces the given size.
func Exactly(size float64) MeasureSpec {
	return MeasureSpec{Mode: MeasureExactly, Size: size}
}

// AtMost returns a spec that caps the size.
func AtMost(size float64) MeasureSpec {
	return MeasureSpec{Mode: MeasureAtMost, Size: size}
}

// Unspecified returns a spec that leaves the size to the view.
func Unspecified() MeasureSpec {
	return MeasureSpec{Mode: MeasureUnspecified}
}

// ResolveSize returns the side of the square the view occupies: the larger of
// the two resolved dimensions.
func ResolveSize(width, height MeasureSpec, defaultSize float64) float64 {
	return max(resolve(width, defaultSize), resolve(height, defaultSize))
}

func resolve(spec MeasureSpec, defaultSize float64) float64 {
	switch spec.Mode {
	case MeasureExactly:
		return spec.Size
	case MeasureAtMost:
		return min(spec.Size, defaultSize)
	default:
		return defaultSize
	}
}
