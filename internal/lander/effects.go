package lander

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// EmitterConfig describes a particle effect.
type EmitterConfig struct {
	Loop   bool    // Keep emitting at Rate until stopped
	Rate   float64 // Particles per second while looping
	Burst  int     // Particles emitted at once by Play
	Life   float64 // Seconds a particle lives
	Speed  float64 // Cells per second
	Spread float64 // Half-angle of the emission cone in radians
	Glyphs []rune  // Drawn from young to old
	Colors []core.Color
}

type particle struct {
	pos, vel core.Vec2
	age      float64
	life     float64
}

// Emitter is a small particle system. It implements Effect.
type Emitter struct {
	cfg       EmitterConfig
	rng       *rand.Rand
	playing   bool
	carry     float64
	origin    core.Vec2
	dir       core.Vec2
	particles []particle
}

// NewEmitter creates a stopped emitter.
func NewEmitter(cfg EmitterConfig, rng *rand.Rand) *Emitter {
	return &Emitter{cfg: cfg, rng: rng, dir: core.V(0, 1)}
}

// Play starts the effect. Playing an active effect is a no-op.
func (e *Emitter) Play() {
	if e.playing {
		return
	}
	e.playing = true
	e.carry = 0
	for i := 0; i < e.cfg.Burst; i++ {
		e.spawn()
	}
}

// Stop ends emission. Live particles fade out on their own.
func (e *Emitter) Stop() {
	e.playing = false
}

// IsPlaying reports whether the effect is active. A burst effect stays
// active until its last particle dies.
func (e *Emitter) IsPlaying() bool {
	return e.playing
}

// Aim sets where new particles appear and the direction they travel.
func (e *Emitter) Aim(origin, dir core.Vec2) {
	e.origin = origin
	if l := dir.Len(); l > 0 {
		e.dir = dir.Scale(1 / l)
	}
}

// Update ages particles and emits new ones over dt seconds.
func (e *Emitter) Update(dt float64) {
	alive := e.particles[:0]
	for _, p := range e.particles {
		p.age += dt
		if p.age >= p.life {
			continue
		}
		p.pos = p.pos.Add(p.vel.Scale(dt))
		alive = append(alive, p)
	}
	e.particles = alive

	if !e.playing {
		return
	}
	if !e.cfg.Loop {
		if len(e.particles) == 0 {
			e.playing = false
		}
		return
	}

	e.carry += e.cfg.Rate * dt
	for e.carry >= 1 {
		e.spawn()
		e.carry--
	}
}

// Len returns the number of live particles.
func (e *Emitter) Len() int {
	return len(e.particles)
}

func (e *Emitter) spawn() {
	angle := (e.rng.Float64()*2 - 1) * e.cfg.Spread
	speed := e.cfg.Speed * (0.6 + 0.4*e.rng.Float64())
	life := e.cfg.Life * (0.5 + 0.5*e.rng.Float64())
	e.particles = append(e.particles, particle{
		pos:  e.origin,
		vel:  e.dir.Rotate(angle).Scale(speed),
		life: life,
	})
}

// Draw renders live particles, offset by (offX, offY) cells.
func (e *Emitter) Draw(dst *core.Screen, offX, offY int) {
	if len(e.cfg.Glyphs) == 0 {
		return
	}
	for _, p := range e.particles {
		stage := p.age / p.life
		gi := core.Clamp(int(stage*float64(len(e.cfg.Glyphs))), 0, len(e.cfg.Glyphs)-1)
		color := core.ColorDefault
		if n := len(e.cfg.Colors); n > 0 {
			color = e.cfg.Colors[core.Clamp(int(stage*float64(n)), 0, n-1)]
		}
		x := int(math.Floor(p.pos.X)) + offX
		y := int(math.Floor(p.pos.Y)) + offY
		dst.SetWithColor(x, y, e.cfg.Glyphs[gi], color)
	}
}

// Effect presets used by the game.
var (
	mainBoosterFX = EmitterConfig{
		Loop:   true,
		Rate:   40,
		Life:   0.35,
		Speed:  10,
		Spread: 0.35,
		Glyphs: []rune{'#', '*', '+', '.'},
		Colors: []core.Color{core.ColorBrightYellow, core.ColorOrange, core.ColorRed},
	}
	sideBoosterFX = EmitterConfig{
		Loop:   true,
		Rate:   20,
		Life:   0.2,
		Speed:  8,
		Spread: 0.3,
		Glyphs: []rune{'*', '.'},
		Colors: []core.Color{core.ColorBrightCyan, core.ColorCyan},
	}
	crashFX = EmitterConfig{
		Burst:  36,
		Life:   1.2,
		Speed:  9,
		Spread: math.Pi,
		Glyphs: []rune{'#', '*', '+', '.'},
		Colors: []core.Color{core.ColorWhite, core.ColorBrightYellow, core.ColorOrange, core.ColorRed},
	}
)
