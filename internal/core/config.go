package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and to derive the tick duration.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for particle jitter
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickSeconds returns the duration of one tick in seconds.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of the game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Scene    int  // Current build index
	Landings int  // Successful landings this session
	Crashes  int  // Crashes this session
	Paused   bool // Whether the game is paused
	Quit     bool // Whether the player asked to leave
}

// Outcome is the result of a flight, reported once per vehicle.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeLanded
	OutcomeCrashed
)

// String returns the name used for persistence and display.
func (o Outcome) String() string {
	switch o {
	case OutcomeLanded:
		return "landed"
	case OutcomeCrashed:
		return "crashed"
	default:
		return "none"
	}
}

// FlightEnded is emitted once when a vehicle lands or crashes.
type FlightEnded struct {
	LevelID  string
	Outcome  Outcome
	Duration time.Duration
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any flights that ended this tick.
type StepResult struct {
	State   GameState
	Flights []FlightEnded
}
