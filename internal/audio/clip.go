// Package audio provides the lander's sound output on top of gopxl/beep.
// All sounds are synthesized; there are no asset files. A silent service
// tracks playback state without touching an audio device, which is what SSH
// sessions and tests use.
package audio

import "github.com/vovakirdan/tui-lander/internal/core"

// Clip identifies one of the game's sounds.
type Clip = core.Clip

// Clips the service can synthesize.
const (
	ClipEngine = core.ClipEngine
	ClipCrash  = core.ClipCrash
	ClipMusic  = core.ClipMusic
)
