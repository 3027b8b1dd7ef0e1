// Package physics provides the small rigid-body integrator the lander runs on
// and the collision world around it. Contacts are axis-aligned boxes kept in
// a resolv space; there is no friction model beyond zeroing the velocity
// component that pushes into a surface.
package physics

import (
	"math"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// Body is a 2D rigid body. Forces are accumulated as impulses during a tick
// and applied on the next Integrate call.
type Body struct {
	Position        core.Vec2
	Velocity        core.Vec2
	Angle           float64 // Orientation in degrees, counter-clockwise on screen
	AngularVelocity float64 // Degrees per second
	Mass            float64
	Gravity         core.Vec2 // Acceleration in units per second squared
	MaxSpeed        float64   // 0 disables the speed cap
	Width, Height   float64   // Hitbox size

	impulse        core.Vec2
	freezeRotation bool
}

// NewBody creates a body at pos with the given mass and hitbox.
// Non-positive mass is treated as unit mass.
func NewBody(pos core.Vec2, mass, w, h float64) *Body {
	if mass <= 0 {
		mass = 1
	}
	return &Body{
		Position: pos,
		Mass:     mass,
		Width:    w,
		Height:   h,
	}
}

// Up returns the body-relative "up" axis in world space.
func (b *Body) Up() core.Vec2 {
	return core.V(0, -1).Rotate(b.Angle * math.Pi / 180)
}

// AddRelativeForce accumulates an impulse expressed in body space, where
// (0, -1) is the engine's "up". The caller scales by the tick duration.
func (b *Body) AddRelativeForce(f core.Vec2) {
	world := f.Rotate(b.Angle * math.Pi / 180)
	b.impulse = b.impulse.Add(world)
}

// Rotate turns the body by degrees. It bypasses angular velocity entirely.
func (b *Body) Rotate(degrees float64) {
	b.Angle = normalizeDegrees(b.Angle + degrees)
}

// SetFreezeRotation suspends or resumes rotational integration. Freezing
// also discards any angular velocity so that a manual rotation is not fought
// by leftover spin.
func (b *Body) SetFreezeRotation(frozen bool) {
	b.freezeRotation = frozen
	if frozen {
		b.AngularVelocity = 0
	}
}

// RotationFrozen reports whether rotational integration is suspended.
func (b *Body) RotationFrozen() bool {
	return b.freezeRotation
}

// Integrate advances the body by dt seconds using semi-implicit Euler.
func (b *Body) Integrate(dt float64) {
	if dt < 0 {
		dt = 0
	}

	b.Velocity = b.Velocity.Add(b.impulse.Scale(1 / b.Mass))
	b.Velocity = b.Velocity.Add(b.Gravity.Scale(dt))
	b.impulse = core.Vec2{}

	if b.MaxSpeed > 0 {
		if speed := b.Velocity.Len(); speed > b.MaxSpeed {
			b.Velocity = b.Velocity.Scale(b.MaxSpeed / speed)
		}
	}

	b.Position = b.Position.Add(b.Velocity.Scale(dt))
	if !b.freezeRotation {
		b.Angle = normalizeDegrees(b.Angle + b.AngularVelocity*dt)
	}
}

// Box returns the body's axis-aligned hitbox.
func (b *Body) Box() core.Box {
	return core.BoxAt(b.Position, b.Width, b.Height)
}

// normalizeDegrees maps an angle into (-180, 180].
func normalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a > 180 {
		a -= 360
	}
	if a <= -180 {
		a += 360
	}
	return a
}
