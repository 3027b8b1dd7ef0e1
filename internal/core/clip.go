package core

import "time"

// Clip identifies one of the game's sounds.
type Clip int

const (
	ClipEngine Clip = iota // Looping main engine rumble
	ClipCrash              // One-shot explosion
	ClipMusic              // Looping background track
)

// String returns a human-readable name for the clip.
func (c Clip) String() string {
	switch c {
	case ClipEngine:
		return "engine"
	case ClipCrash:
		return "crash"
	case ClipMusic:
		return "music"
	default:
		return "unknown"
	}
}

// Duration returns how long a one-shot playback of the clip lasts.
func (c Clip) Duration() time.Duration {
	switch c {
	case ClipCrash:
		return 900 * time.Millisecond
	case ClipEngine:
		return 400 * time.Millisecond
	default:
		return 2 * time.Second
	}
}
