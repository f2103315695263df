package tray

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManagerStatusLabel(t *testing.T) {
	manager := New(nil, Callbacks{})
	assert.Equal(t, "Progress: starting...", manager.Label())

	manager.SetStatus("82.45%")
	assert.Equal(t, "Progress: 82.45%", manager.Label())

	manager.SetAnimating(true)
	assert.Equal(t, "Progress: 82.45% (animating)", manager.Label())

	manager.SetAnimating(false)
	assert.Equal(t, "Progress: 82.45%", manager.Label())
}

func TestManagerCallbackToleratesNil(t *testing.T) {
	called := false
	manager := New(nil, Callbacks{OnFill: func() { called = true }})

	manager.callback(nil)()
	manager.callback(manager.callbacks.OnFill)()
	assert.True(t, called)
}
