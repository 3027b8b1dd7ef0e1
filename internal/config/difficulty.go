package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// presetScale holds multipliers applied to the base physics.
type presetScale struct {
	gravity  float64
	thrust   float64
	maxSpeed float64
}

var presets = map[DifficultyPreset]presetScale{
	DifficultyEasy:   {gravity: 0.7, thrust: 1.1, maxSpeed: 0.8},
	DifficultyNormal: {gravity: 1.0, thrust: 1.0, maxSpeed: 1.0},
	DifficultyHard:   {gravity: 1.35, thrust: 0.95, maxSpeed: 1.25},
}

// ParseDifficulty validates a preset name. The empty string means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := presets[p]; !ok {
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
	return p, nil
}

// ApplyPreset scales the physics section of cfg for the given preset.
// Unknown presets leave cfg unchanged.
func ApplyPreset(cfg *LanderConfig, preset DifficultyPreset) {
	scale, ok := presets[preset]
	if !ok {
		return
	}
	cfg.Physics.Gravity *= scale.gravity
	cfg.Physics.Thrust *= scale.thrust
	cfg.Physics.MaxSpeed *= scale.maxSpeed
}
