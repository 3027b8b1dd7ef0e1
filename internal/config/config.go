// Package config provides YAML-based tuning for the lander and difficulty
// presets applied on top of it.
package config

import "time"

// LanderConfig contains all tunable parameters of the game.
type LanderConfig struct {
	Physics PhysicsConfig `yaml:"physics"`
	Timing  TimingConfig  `yaml:"timing"`
	Rocket  RocketConfig  `yaml:"rocket"`
	Audio   AudioConfig   `yaml:"audio"`
	Input   InputConfig   `yaml:"input"`
}

// PhysicsConfig defines the vehicle's motion coefficients.
type PhysicsConfig struct {
	Thrust   float64 `yaml:"thrust"`    // Impulse per second of held thrust
	Rotation float64 `yaml:"rotation"`  // Degrees per second of held rotation
	Gravity  float64 `yaml:"gravity"`   // Cells per second squared, downward
	Mass     float64 `yaml:"mass"`      // Vehicle mass
	MaxSpeed float64 `yaml:"max_speed"` // Cells per second, 0 = unlimited
}

// TimingConfig defines delays between an outcome and the following scene load.
type TimingConfig struct {
	SuccessDelay float64 `yaml:"success_delay"` // Seconds
	CrashDelay   float64 `yaml:"crash_delay"`   // Seconds
}

// RocketConfig defines the vehicle hitbox in cells.
type RocketConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// AudioConfig defines sound output. Volumes are base-2 exponents.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"`
	EngineVolume float64 `yaml:"engine_volume"`
	MusicVolume  float64 `yaml:"music_volume"`
}

// InputConfig defines how terminal key presses turn into held keys.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"` // Milliseconds a key stays held after its last press
}

// SuccessDelayDuration returns the landing delay as a duration.
func (t TimingConfig) SuccessDelayDuration() time.Duration {
	return seconds(t.SuccessDelay)
}

// CrashDelayDuration returns the crash delay as a duration.
func (t TimingConfig) CrashDelayDuration() time.Duration {
	return seconds(t.CrashDelay)
}

// HoldTicks converts the hold window into ticks at the given rate.
// At least one tick is always returned.
func (i InputConfig) HoldTicks(tickRate int) int {
	if tickRate <= 0 {
		return 1
	}
	ticks := i.HoldMS * tickRate / 1000
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

func seconds(s float64) time.Duration {
	if s < 0 {
		return 0
	}
	return time.Duration(s * float64(time.Second))
}

// DefaultLanderConfig returns the hardcoded configuration used when no YAML
// source can be read.
func DefaultLanderConfig() LanderConfig {
	return LanderConfig{
		Physics: PhysicsConfig{
			Thrust:   28,
			Rotation: 120,
			Gravity:  9,
			Mass:     1,
			MaxSpeed: 30,
		},
		Timing: TimingConfig{
			SuccessDelay: 2,
			CrashDelay:   2,
		},
		Rocket: RocketConfig{
			Width:  1,
			Height: 1,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0,
			EngineVolume: -2.3, // About 0.2 of full scale
			MusicVolume:  -1,
		},
		Input: InputConfig{
			HoldMS: 300,
		},
	}
}
