package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"progressring/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	MaxValue            float64 `yaml:"max_value"`
	StrokeWidth         float64 `yaml:"stroke_width"`
	LabelTextSize       float64 `yaml:"label_text_size"`
	DefaultSize         float64 `yaml:"default_size"`
	AnimationDurationMS *int    `yaml:"animation_duration_ms"`
	Step                float64 `yaml:"step"`
	Scheduler           string  `yaml:"scheduler,omitempty"`
}

// LoadSettings reads user preferences from the app's config directory.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := ResolveConfigPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// LoadSettingsFile reads user preferences from an explicit path.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to the app's config directory.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := ResolveConfigPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// SaveSettingsFile writes user preferences to an explicit path.
func SaveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	durationMS := int(settings.AnimationDuration / time.Millisecond)
	fileData := yamlSettings{
		MaxValue:            settings.MaxValue,
		StrokeWidth:         settings.StrokeWidth,
		LabelTextSize:       settings.LabelTextSize,
		DefaultSize:         settings.DefaultSize,
		AnimationDurationMS: &durationMS,
		Step:                settings.Step,
		Scheduler:           string(settings.Scheduler),
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// ResolveConfigPath returns where settings for appName are stored.
func ResolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.MaxValue > 0 {
		settings.MaxValue = fileData.MaxValue
	}
	if fileData.StrokeWidth > 0 {
		settings.StrokeWidth = fileData.StrokeWidth
	}
	if fileData.LabelTextSize > 0 {
		settings.LabelTextSize = fileData.LabelTextSize
	}
	if fileData.DefaultSize > 0 {
		settings.DefaultSize = fileData.DefaultSize
	}
	if fileData.AnimationDurationMS != nil && *fileData.AnimationDurationMS >= 0 {
		settings.AnimationDuration = time.Duration(*fileData.AnimationDurationMS) * time.Millisecond
	}
	if fileData.Step > 0 {
		settings.Step = fileData.Step
	}
	switch kind := preferences.SchedulerKind(fileData.Scheduler); kind {
	case preferences.SchedulerFyne, preferences.SchedulerTicker:
		settings.Scheduler = kind
	}
}
