package geometry

import (
	"errors"
	"fmt"

	"progressring/internal/core/model"
)

// StartAngle is where every arc begins, in degrees (12 o'clock).
const StartAngle = -90.0

// ErrInvalidConfiguration indicates a max value that cannot be used as a divisor.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// ArcBounds returns the oval the arc is stroked on, inset by half the stroke
// width so the stroke stays inside the view.
func ArcBounds(width, height, strokeWidth float64) model.RectF {
	inset := strokeWidth / 2
	return model.RectF{
		Left:   inset,
		Top:    inset,
		Right:  width - inset,
		Bottom: height - inset,
	}
}

// SweepAngle returns the clockwise sweep in degrees for current out of maxValue.
// Negative values and values beyond maxValue are passed through unclamped.
func SweepAngle(current, maxValue float64) (float64, error) {
	if err := ValidateMax(maxValue); err != nil {
		return 0, err
	}
	return (current / maxValue) * 360, nil
}

// LabelAnchor returns the point the label is centered on.
func LabelAnchor(width, height float64) model.PointF {
	return model.PointF{X: width / 2, Y: height / 2}
}

// PercentLabel formats current out of maxValue as a percentage with two decimals.
func PercentLabel(current, maxValue float64) (string, error) {
	if err := ValidateMax(maxValue); err != nil {
		return "", err
	}
	return fmt.Sprintf("%.2f%%", current/maxValue*100), nil
}

// ValidateMax returns an error wrapping ErrInvalidConfiguration unless maxValue
// is a positive number. NaN is rejected.
func ValidateMax(maxValue float64) error {
	if !(maxValue > 0) {
		return fmt.Errorf("%w: max value %v must be positive", ErrInvalidConfiguration, maxValue)
	}
	return nil
}
