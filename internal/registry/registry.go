// Package registry holds the ordered scene build list.
// Scenes are levels addressed by build index; the game loads them by index
// and wraps to the first scene after the last.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-lander/internal/levels"
)

// SceneInfo contains metadata about a registered scene.
type SceneInfo struct {
	Index int
	ID    string
	Title string
}

// Build is the ordered list of scenes. It is safe for concurrent use, so one
// build can back every SSH session.
type Build struct {
	mu     sync.RWMutex
	scenes []levels.Level
	index  map[string]int
}

// New creates an empty build list.
func New() *Build {
	return &Build{index: make(map[string]int)}
}

// FromLevels creates a build list with the levels in the given order.
func FromLevels(lvls []levels.Level) *Build {
	b := New()
	for _, lvl := range lvls {
		b.Register(lvl)
	}
	return b
}

// Register appends a level to the end of the build list.
// Panics if a level with the same ID is already registered.
func (b *Build) Register(lvl levels.Level) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.index[lvl.ID]; exists {
		panic(fmt.Sprintf("registry: scene %q already registered", lvl.ID))
	}

	b.index[lvl.ID] = len(b.scenes)
	b.scenes = append(b.scenes, lvl)
}

// Len returns the number of scenes.
func (b *Build) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.scenes)
}

// List returns information about all scenes in build order.
func (b *Build) List() []SceneInfo {
	b.mu.RLock()
	defer b.mu.RUnlock()

	result := make([]SceneInfo, 0, len(b.scenes))
	for i, lvl := range b.scenes {
		result = append(result, SceneInfo{
			Index: i,
			ID:    lvl.ID,
			Title: lvl.Name,
		})
	}
	return result
}

// Scene returns the level at build index i.
// Returns an error if the index is out of range.
func (b *Build) Scene(i int) (levels.Level, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if i < 0 || i >= len(b.scenes) {
		return levels.Level{}, fmt.Errorf("registry: scene index %d out of range [0,%d)", i, len(b.scenes))
	}
	return b.scenes[i], nil
}

// IndexOf returns the build index of the scene with the given ID.
func (b *Build) IndexOf(id string) (int, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	i, ok := b.index[id]
	return i, ok
}

// Exists checks if a scene with the given ID is registered.
func (b *Build) Exists(id string) bool {
	_, ok := b.IndexOf(id)
	return ok
}

// Next returns the index after i, wrapping to 0 after the last scene.
func (b *Build) Next(i int) int {
	n := b.Len()
	if n == 0 {
		return 0
	}
	return (i + 1) % n
}
