package lander

import (
	"sync"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// LevelMusic is the background track. The host owns one per player and the
// game calls Spawn on every scene load; only the first call starts playback,
// so the track runs uninterrupted across scene transitions.
type LevelMusic struct {
	voice Voice

	mu      sync.Mutex
	spawned bool
}

// NewLevelMusic creates a handle that will play through voice.
func NewLevelMusic(voice Voice) *LevelMusic {
	return &LevelMusic{voice: voice}
}

// Spawn starts the looping track the first time it is called.
// Returns true only for that first call.
func (m *LevelMusic) Spawn() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.spawned {
		return false
	}
	m.spawned = true
	m.voice.PlayLoop(core.ClipMusic)
	return true
}

// Playing reports whether the track is audible.
func (m *LevelMusic) Playing() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.spawned && m.voice.IsPlaying()
}

// Stop silences the track for good, e.g. when the host shuts down.
func (m *LevelMusic) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.voice.Stop()
}
