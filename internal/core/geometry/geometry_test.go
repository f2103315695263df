package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"progressring/internal/core/model"
)

func TestSweepAngleProportional(t *testing.T) {
	cases := []struct {
		name     string
		progress float64
		max      float64
	}{
		{name: "zero", progress: 0, max: 100},
		{name: "partial", progress: 82.45, max: 100},
		{name: "full", progress: 100, max: 100},
		{name: "negative", progress: -25, max: 100},
		{name: "overflow", progress: 250, max: 100},
		{name: "fractional max", progress: 0.3, max: 0.7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sweep, err := SweepAngle(tc.progress, tc.max)
			require.NoError(t, err)
			assert.Equal(t, (tc.progress/tc.max)*360, sweep)
		})
	}
}

func TestSweepAnglePassesThroughOutOfRange(t *testing.T) {
	sweep, err := SweepAngle(-50, 100)
	require.NoError(t, err)
	assert.InDelta(t, -180, sweep, 1e-9)

	sweep, err = SweepAngle(150, 100)
	require.NoError(t, err)
	assert.InDelta(t, 540, sweep, 1e-9)
}

func TestSweepAngleRejectsNonPositiveMax(t *testing.T) {
	for _, maxValue := range []float64{0, -1, math.NaN(), math.Inf(-1)} {
		sweep, err := SweepAngle(50, maxValue)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
		assert.Zero(t, sweep)

		label, err := PercentLabel(50, maxValue)
		assert.ErrorIs(t, err, ErrInvalidConfiguration)
		assert.Empty(t, label)
	}
}

func TestArcBoundsInsetByHalfStroke(t *testing.T) {
	sizes := [][2]float64{{100, 100}, {200, 200}, {37, 91}, {20, 20}}
	for _, size := range sizes {
		bounds := ArcBounds(size[0], size[1], 20)
		assert.Equal(t, model.RectF{Left: 10, Top: 10, Right: size[0] - 10, Bottom: size[1] - 10}, bounds)
	}
}

func TestLabelAnchorIsCenter(t *testing.T) {
	assert.Equal(t, model.PointF{X: 50, Y: 75}, LabelAnchor(100, 150))
}

func TestPercentLabel(t *testing.T) {
	label, err := PercentLabel(82.45, 100)
	require.NoError(t, err)
	assert.Equal(t, "82.45%", label)

	label, err = PercentLabel(1, 3)
	require.NoError(t, err)
	assert.Equal(t, "33.33%", label)

	label, err = PercentLabel(-5, 10)
	require.NoError(t, err)
	assert.Equal(t, "-50.00%", label)

	_, err = PercentLabel(1, 0)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestResolveSizeIsSquare(t *testing.T) {
	cases := []struct {
		name   string
		width  MeasureSpec
		height MeasureSpec
		want   float64
	}{
		{name: "unspecified", width: Unspecified(), height: Unspecified(), want: 100},
		{name: "exact wider", width: Exactly(300), height: Exactly(120), want: 300},
		{name: "exact taller", width: Exactly(80), height: Exactly(140), want: 140},
		{name: "at most below default", width: AtMost(60), height: AtMost(40), want: 60},
		{name: "at most above default", width: AtMost(500), height: Unspecified(), want: 100},
		{name: "mixed", width: Exactly(40), height: AtMost(500), want: 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveSize(tc.width, tc.height, 100))
		})
	}
}
