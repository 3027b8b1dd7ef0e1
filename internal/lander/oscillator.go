package lander

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/core"
)

const (
	// periodEpsilon is the smallest period that still moves an obstacle.
	periodEpsilon = 1e-9
	// clockEpsilon absorbs float error when comparing clock readings.
	clockEpsilon = 1e-9
)

// Oscillator moves a point back and forth between its baseline and
// baseline + displacement, as a pure function of the game clock.
type Oscillator struct {
	baseline     core.Vec2
	displacement core.Vec2
	period       float64
}

// NewOscillator captures baseline as the starting position.
func NewOscillator(baseline, displacement core.Vec2, period float64) *Oscillator {
	return &Oscillator{
		baseline:     baseline,
		displacement: displacement,
		period:       period,
	}
}

// Baseline returns the position captured at spawn.
func (o *Oscillator) Baseline() core.Vec2 {
	return o.baseline
}

// Position returns the oscillated position at clock time t in seconds.
func (o *Oscillator) Position(t float64) core.Vec2 {
	f, ok := OscillationFactor(t, o.period)
	if !ok {
		return o.baseline
	}
	return o.baseline.Add(o.displacement.Scale(f))
}

// OscillationFactor returns (sin(2π·t/period) + 1) / 2, a value in [0,1].
// ok is false when the period is too small to move.
func OscillationFactor(t, period float64) (factor float64, ok bool) {
	if period <= periodEpsilon {
		return 0, false
	}
	cycles := t / period
	raw := math.Sin(cycles * 2 * math.Pi)
	return (raw + 1) / 2, true
}
