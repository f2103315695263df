package snapshot

import (
	"bytes"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"progressring/internal/core/geometry"
	"progressring/internal/ui/preferences"
)

func alphaAt(img image.Image, x, y int) uint32 {
	_, _, _, a := img.At(x, y).RGBA()
	return a
}

func TestFramesSampleTheTransition(t *testing.T) {
	images, err := Frames(Options{
		Settings: preferences.DefaultSettings(),
		Pixels:   100,
		From:     0,
		Progress: 100,
		Frames:   3,
	})
	require.NoError(t, err)
	require.Len(t, images, 3)

	assert.Zero(t, alphaAt(images[0], 90, 50), "nothing swept at the start")

	// Decelerated halfway point is 75%, ending at 9 o'clock.
	assert.NotZero(t, alphaAt(images[1], 50, 90))
	assert.Zero(t, alphaAt(images[1], 21, 21))

	assert.NotZero(t, alphaAt(images[2], 21, 21), "full ring at the end")
	assert.NotZero(t, alphaAt(images[2], 90, 50))
}

func TestFramesSingleShowsProgress(t *testing.T) {
	images, err := Frames(Options{
		Settings: preferences.DefaultSettings(),
		Pixels:   200,
		Progress: 50,
	})
	require.NoError(t, err)
	require.Len(t, images, 1)
	assert.Equal(t, image.Rect(0, 0, 200, 200), images[0].Bounds())

	assert.NotZero(t, alphaAt(images[0], 180, 100), "3 o'clock")
	assert.Zero(t, alphaAt(images[0], 20, 100), "9 o'clock")
}

func TestFramesRejectInvalidMax(t *testing.T) {
	for _, maxValue := range []float64{0, -1, math.NaN()} {
		settings := preferences.DefaultSettings()
		settings.MaxValue = maxValue

		images, err := Frames(Options{Settings: settings, Pixels: 64, Progress: 10, Frames: 3})
		assert.ErrorIs(t, err, geometry.ErrInvalidConfiguration, "max %v", maxValue)
		assert.Nil(t, images)
	}
}

func TestCommandRejectsZeroMax(t *testing.T) {
	out := filepath.Join(t.TempDir(), "ring.png")
	cmd := NewCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--max", "0", "--out", out})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, geometry.ErrInvalidConfiguration)
	assert.NoFileExists(t, out)
}

func TestRenderWritesNumberedFrames(t *testing.T) {
	dir := t.TempDir()
	paths, err := Render(Options{
		Settings: preferences.DefaultSettings(),
		Pixels:   32,
		Progress: 40,
		Frames:   2,
		Out:      filepath.Join(dir, "out", "ring.png"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "out", "ring-000.png"),
		filepath.Join(dir, "out", "ring-001.png"),
	}, paths)

	for _, path := range paths {
		file, err := os.Open(path)
		require.NoError(t, err)
		img, err := png.Decode(file)
		require.NoError(t, file.Close())
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 32, 32), img.Bounds())
	}
}

func TestRenderRejectsBadSize(t *testing.T) {
	_, err := Render(Options{Settings: preferences.DefaultSettings(), Out: "unused.png"})
	assert.Error(t, err)
}

func TestFramePaths(t *testing.T) {
	assert.Equal(t, []string{"a.png"}, framePaths("a.png", 1))
	assert.Equal(t, []string{"a-000.png", "a-001.png"}, framePaths("a.png", 2))
	assert.Equal(t, []string{"dir/a-000.png", "dir/a-001.png"}, framePaths("dir/a", 2))
}

func TestCommandPrintsWrittenPaths(t *testing.T) {
	out := filepath.Join(t.TempDir(), "ring.png")
	cmd := NewCommand()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"--size", "48", "--progress", "25", "--out", out})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, out, strings.TrimSpace(stdout.String()))
	assert.FileExists(t, out)
}

func TestCommandFlagsOverrideConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("max_value: 200\nstroke_width: 6\n"), 0o644))

	flags := &commandFlags{}
	cmd := newCommand(flags)
	require.NoError(t, cmd.ParseFlags([]string{"--config", configPath, "--max", "50"}))

	options, err := flags.options(cmd)
	require.NoError(t, err)
	assert.Equal(t, 50.0, options.Settings.MaxValue)
	assert.Equal(t, 6.0, options.Settings.StrokeWidth)
	assert.Equal(t, 20.0, options.Settings.LabelTextSize)
}
