package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the tunables cmd/vorolath loads from a YAML file, or
// falls back to defaults for when none is given.
type Settings struct {
	Tolerance   float64 `yaml:"tolerance"`
	RayLength   float64 `yaml:"rayLength"`
	Iterations  int     `yaml:"iterations"`
	Alpha       float64 `yaml:"alpha"`
	WindowMinX  float64 `yaml:"windowMinX"`
	WindowMinY  float64 `yaml:"windowMinY"`
	WindowMaxX  float64 `yaml:"windowMaxX"`
	WindowMaxY  float64 `yaml:"windowMaxY"`
}

// defaultSettings returns the settings vorolath uses when no config
// file is given, or when config writes a fresh one to disk.
func defaultSettings() Settings {
	return Settings{
		Tolerance:  1e-9,
		RayLength:  1e6,
		Iterations: 10,
		Alpha:      0.5,
		WindowMinX: 0,
		WindowMinY: 0,
		WindowMaxX: 100,
		WindowMaxY: 100,
	}
}

func loadSettings(path string) (Settings, error) {
	if path == "" {
		return defaultSettings(), nil
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("vorolath: %w", err)
	}
	settings := defaultSettings()
	if err := yaml.Unmarshal(buf, &settings); err != nil {
		return Settings{}, fmt.Errorf("vorolath: %w", err)
	}
	return settings, nil
}

func writeDefaultSettings(path string) error {
	buf, err := yaml.Marshal(defaultSettings())
	if err != nil {
		return fmt.Errorf("vorolath: %w", err)
	}
	return os.WriteFile(path, buf, 0o644)
}
