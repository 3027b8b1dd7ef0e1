// Package levels loads lander level definitions from YAML files.
// A default pack is embedded; a user directory can replace it.
package levels

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// Level represents a complete level definition.
type Level struct {
	ID        string
	Name      string
	Width     int
	Height    int
	Spawn     core.Vec2 // Center of the spawn cell
	Colliders []Collider
	Obstacles []Obstacle
	FilePath  string
}

// Collider is a static, tagged block of terrain.
type Collider struct {
	Tag  string
	Rect core.Rect
}

// Obstacle is a block that oscillates between Rect and Rect moved by Move.
type Obstacle struct {
	Rect   core.Rect
	Move   core.Vec2
	Period float64 // Seconds per full cycle; 0 keeps the block still
}

// Bounds returns the level area as a world box.
func (l *Level) Bounds() core.Box {
	return core.NewRect(0, 0, l.Width, l.Height).Box()
}

// DefaultHitbox is the vehicle size Validate checks the spawn with.
var DefaultHitbox = core.V(1, 1)

// Sweep returns the box the obstacle covers over a full cycle.
func (o Obstacle) Sweep() core.Box {
	from := o.Rect.Box()
	to := from.Translate(o.Move)
	return core.Box{
		Min: core.V(min(from.Min.X, to.Min.X), min(from.Min.Y, to.Min.Y)),
		Max: core.V(max(from.Max.X, to.Max.X), max(from.Max.Y, to.Max.Y)),
	}
}

// Validate checks that the level is playable with DefaultHitbox.
func (l *Level) Validate() error {
	return l.ValidateHitbox(DefaultHitbox)
}

// ValidateHitbox checks that the level is playable for a vehicle of the
// given size. The spawn box must lie inside the level, clear of every
// collider and of every obstacle's sweep.
func (l *Level) ValidateHitbox(hitbox core.Vec2) error {
	if strings.TrimSpace(l.ID) == "" {
		return fmt.Errorf("level has no id")
	}
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("level %s: size must be positive, got %dx%d", l.ID, l.Width, l.Height)
	}
	if hitbox.X <= 0 || hitbox.Y <= 0 {
		hitbox = DefaultHitbox
	}

	bounds := l.Bounds()
	spawn := core.BoxAt(l.Spawn, hitbox.X, hitbox.Y)
	if !spawn.Inside(bounds) {
		return fmt.Errorf("level %s: spawn (%.0f,%.0f) with a %gx%g hitbox is outside %dx%d",
			l.ID, l.Spawn.X, l.Spawn.Y, hitbox.X, hitbox.Y, l.Width, l.Height)
	}

	finishes := 0
	for i, c := range l.Colliders {
		if c.Rect.W <= 0 || c.Rect.H <= 0 {
			return fmt.Errorf("level %s: collider %d has empty size", l.ID, i)
		}
		if NormalizeTag(c.Tag) == TagFinish {
			finishes++
		}
		if spawn.Intersects(c.Rect.Box()) {
			return fmt.Errorf("level %s: spawn overlaps collider %d", l.ID, i)
		}
	}
	if finishes == 0 {
		return fmt.Errorf("level %s: no %s collider", l.ID, TagFinish)
	}

	for i, o := range l.Obstacles {
		if o.Rect.W <= 0 || o.Rect.H <= 0 {
			return fmt.Errorf("level %s: obstacle %d has empty size", l.ID, i)
		}
		if o.Period < 0 {
			return fmt.Errorf("level %s: obstacle %d has negative period", l.ID, i)
		}
		if spawn.Intersects(o.Sweep()) {
			return fmt.Errorf("level %s: obstacle %d passes through the spawn", l.ID, i)
		}
	}
	return nil
}
