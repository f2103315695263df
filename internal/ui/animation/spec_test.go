package animation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDecelerateEasing(t *testing.T) {
	easing := Decelerate(1)
	assert.Equal(t, 0.0, easing(0))
	assert.Equal(t, 1.0, easing(1))
	assert.InDelta(t, 0.75, easing(0.5), 1e-12)

	// Front-loaded: more than half the distance is covered in the first half.
	assert.Greater(t, easing(0.25), 0.25)
	assert.InDelta(t, Decelerate(2)(0.5), 1-0.0625, 1e-12)
}

func TestSessionFraction(t *testing.T) {
	start := time.Unix(0, 0)
	session := Session{From: 10, To: 20, Start: start, Duration: 200 * time.Millisecond, Easing: Linear}

	assert.Equal(t, 0.0, session.Fraction(start.Add(-time.Second)))
	assert.Equal(t, 0.5, session.Fraction(start.Add(100*time.Millisecond)))
	assert.Equal(t, 1.0, session.Fraction(start.Add(time.Second)))
	assert.Equal(t, 15.0, session.ValueAt(start.Add(100*time.Millisecond)))
	assert.True(t, session.Done(start.Add(200*time.Millisecond)))
}

func TestSessionWithoutDurationIsDone(t *testing.T) {
	session := Session{From: 1, To: 2, Start: time.Unix(0, 0)}
	assert.True(t, session.Done(session.Start))
	assert.Equal(t, 2.0, session.ValueAt(session.Start))
}

func TestConfigNormalize(t *testing.T) {
	config := Config{Duration: -time.Second}.Normalize()
	assert.Equal(t, time.Duration(0), config.Duration)
	assert.Equal(t, defaultFrameInterval, config.FrameInterval)
	assert.NotNil(t, config.Easing)
}
