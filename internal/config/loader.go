package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/lander.yaml
var defaultLanderYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultLanderYAML
}

// Load loads the lander configuration.
// Search order: customPath -> ~/.lander/configs/lander.yaml -> ./configs/lander.yaml -> embedded default
func Load(customPath string) (LanderConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return LanderConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return LanderConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("lander.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "lander.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultLanderYAML)
	if err != nil {
		return DefaultLanderConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the hardcoded defaults, so a partial file
// only overrides the keys it names.
func Parse(data []byte) (LanderConfig, error) {
	cfg := DefaultLanderConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return LanderConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return LanderConfig{}, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c LanderConfig) Validate() error {
	switch {
	case c.Physics.Mass <= 0:
		return fmt.Errorf("physics.mass must be positive, got %v", c.Physics.Mass)
	case c.Physics.Thrust < 0:
		return fmt.Errorf("physics.thrust must not be negative, got %v", c.Physics.Thrust)
	case c.Physics.Rotation < 0:
		return fmt.Errorf("physics.rotation must not be negative, got %v", c.Physics.Rotation)
	case c.Physics.MaxSpeed < 0:
		return fmt.Errorf("physics.max_speed must not be negative, got %v", c.Physics.MaxSpeed)
	case c.Timing.SuccessDelay < 0 || c.Timing.CrashDelay < 0:
		return fmt.Errorf("timing delays must not be negative")
	case c.Rocket.Width <= 0 || c.Rocket.Height <= 0:
		return fmt.Errorf("rocket hitbox must be positive, got %vx%v", c.Rocket.Width, c.Rocket.Height)
	case c.Input.HoldMS < 0:
		return fmt.Errorf("input.hold_ms must not be negative, got %d", c.Input.HoldMS)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lander", "configs", filename)
}
