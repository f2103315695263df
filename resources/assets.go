package resources

import (
	_ "embed"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed colors.yaml
var colorsYAML []byte

var (
	colorsOnce sync.Once
	colorsErr  error
	colorCache sync.Map
)

// Color returns the named color from the embedded palette.
func Color(name string) (color.NRGBA, error) {
	colorsOnce.Do(func() {
		colorsErr = loadColors(colorsYAML, &colorCache)
	})
	if colorsErr != nil {
		return color.NRGBA{}, colorsErr
	}
	if cached, ok := colorCache.Load(name); ok {
		return cached.(color.NRGBA), nil
	}
	return color.NRGBA{}, fmt.Errorf("load color %s: not defined", name)
}

// MustColor returns the named color or panics on error.
func MustColor(name string) color.NRGBA {
	value, err := Color(name)
	if err != nil {
		panic(err)
	}
	return value
}

func loadColors(data []byte, cache *sync.Map) error {
	var named map[string]string
	if err := yaml.Unmarshal(data, &named); err != nil {
		return fmt.Errorf("parse colors yaml: %w", err)
	}
	for name, hex := range named {
		value, err := ParseHex(hex)
		if err != nil {
			return fmt.Errorf("load color %s: %w", name, err)
		}
		cache.Store(name, value)
	}
	return nil
}

// ParseHex parses "#RRGGBB" or "#AARRGGBB".
func ParseHex(hex string) (color.NRGBA, error) {
	digits := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(digits) != 6 && len(digits) != 8 {
		return color.NRGBA{}, fmt.Errorf("parse hex color %q: want 6 or 8 digits", hex)
	}
	raw, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("parse hex color %q: %w", hex, err)
	}
	alpha := uint8(0xff)
	if len(digits) == 8 {
		alpha = uint8(raw >> 24)
	}
	return color.NRGBA{
		R: uint8(raw >> 16),
		G: uint8(raw >> 8),
		B: uint8(raw),
		A: alpha,
	}, nil
}
