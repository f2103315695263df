package platform

import (
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecondInstanceActivatesFirst(t *testing.T) {
	appName := fmt.Sprintf("progressring-test-%d", time.Now().UnixNano())
	activated := make(chan struct{}, 1)

	guard, err := AcquireSingleInstance(appName)
	require.NoError(t, err)
	guard.SetOnActivate(func() {
		activated <- struct{}{}
	})
	defer func() {
		_ = guard.Release()
	}()

	second, err := AcquireSingleInstance(appName)
	assert.Nil(t, second)
	assert.ErrorIs(t, err, ErrAlreadyRunning)

	select {
	case <-activated:
	case <-time.After(2 * time.Second):
		t.Fatal("running instance was not activated")
	}
}

func sendActivation(t *testing.T, guard *InstanceGuard) {
	t.Helper()
	server, client := net.Pipe()
	handled := make(chan struct{})
	go func() {
		guard.handle(server)
		close(handled)
	}()
	_, err := fmt.Fprintln(client, activateMessage)
	require.NoError(t, err)
	require.NoError(t, client.Close())
	<-handled
}

func TestActivationWithoutHandlerIsDropped(t *testing.T) {
	guard := &InstanceGuard{}
	sendActivation(t, guard)

	calls := 0
	guard.SetOnActivate(func() { calls++ })
	sendActivation(t, guard)
	assert.Equal(t, 1, calls)
}

func TestReleaseFreesThePort(t *testing.T) {
	appName := fmt.Sprintf("progressring-release-%d", time.Now().UnixNano())

	guard, err := AcquireSingleInstance(appName)
	require.NoError(t, err)
	require.NoError(t, guard.Release())
	require.NoError(t, guard.Release())

	again, err := AcquireSingleInstance(appName)
	require.NoError(t, err)
	assert.Equal(t, guard.Address(), again.Address())
	require.NoError(t, again.Release())
}

func TestPortFromNameIsStable(t *testing.T) {
	port := portFromName("ProgressRing")
	assert.Equal(t, port, portFromName("ProgressRing"))
	assert.GreaterOrEqual(t, port, 20000)
	assert.LessOrEqual(t, port, 39999)
}
