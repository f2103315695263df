// Package snapshot renders progress ring frames to PNG files without a window.
package snapshot

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"progressring/internal/core/geometry"
	"progressring/internal/ui/animation"
	"progressring/internal/ui/preferences"
	"progressring/internal/ui/ring"
)

// Options describes what to render.
type Options struct {
	Settings preferences.Settings
	Pixels   int
	From     float64
	Progress float64
	Frames   int
	Out      string
}

// Render draws the requested frames and writes them as PNG files. It returns
// the written paths in order.
func Render(options Options) ([]string, error) {
	if options.Pixels <= 0 {
		return nil, fmt.Errorf("size %d must be positive", options.Pixels)
	}
	if options.Frames <= 0 {
		options.Frames = 1
	}

	images, err := Frames(options)
	if err != nil {
		return nil, err
	}

	paths := framePaths(options.Out, len(images))
	for index, img := range images {
		if err := writePNG(paths[index], img); err != nil {
			return nil, err
		}
	}
	return paths, nil
}

// Frames renders the transition from From to Progress, sampled evenly over
// the animation duration. A single frame shows Progress directly. A max value
// that is not positive is rejected before anything is drawn.
func Frames(options Options) ([]image.Image, error) {
	settings := options.Settings
	if err := geometry.ValidateMax(settings.MaxValue); err != nil {
		return nil, fmt.Errorf("render frame: %w", err)
	}
	ringOptions := settings.RingOptions()
	ringOptions.Logf = nil

	scale := float64(options.Pixels) / settings.DefaultSize
	scheduler := animation.NewManualScheduler(time.Unix(0, 0))

	if options.Frames <= 1 {
		ringOptions.InitialProgress = options.Progress
		target := ring.New(ringOptions, scheduler, nil)
		target.OnSizeChanged(settings.DefaultSize, settings.DefaultSize)
		img, err := target.Render(options.Pixels, options.Pixels, scale)
		if err != nil {
			return nil, fmt.Errorf("render frame: %w", err)
		}
		return []image.Image{img}, nil
	}

	ringOptions.InitialProgress = options.From
	target := ring.New(ringOptions, scheduler, nil)
	target.Controller().SetClock(scheduler.Now)
	target.OnSizeChanged(settings.DefaultSize, settings.DefaultSize)
	target.SetProgress(options.Progress)

	step := settings.AnimationDuration / time.Duration(options.Frames-1)
	images := make([]image.Image, 0, options.Frames)
	for index := 0; index < options.Frames; index++ {
		if index > 0 {
			scheduler.Advance(step)
		}
		if index == options.Frames-1 {
			scheduler.Advance(settings.AnimationDuration - step*time.Duration(index))
		}
		img, err := target.Render(options.Pixels, options.Pixels, scale)
		if err != nil {
			return nil, fmt.Errorf("render frame %d: %w", index, err)
		}
		images = append(images, img)
	}
	return images, nil
}

func framePaths(out string, count int) []string {
	if count == 1 {
		return []string{out}
	}
	extension := filepath.Ext(out)
	base := strings.TrimSuffix(out, extension)
	if extension == "" {
		extension = ".png"
	}
	paths := make([]string, count)
	for index := range paths {
		paths[index] = fmt.Sprintf("%s-%03d%s", base, index, extension)
	}
	return paths
}

func writePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(file, img); err != nil {
		_ = file.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return file.Close()
}
