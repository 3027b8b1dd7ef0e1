package lander

import "github.com/vovakirdan/tui-lander/internal/core"

// Boosters groups the vehicle's flame effects.
type Boosters struct {
	Main  Effect
	Left  Effect
	Right Effect
}

// Movement turns held keys into thrust and rotation for one vehicle.
type Movement struct {
	body     RigidBody
	voice    Voice
	boosters Boosters

	thrust   float64 // Impulse per second
	rotation float64 // Degrees per second

	enabled bool
}

// NewMovement creates an enabled Movement for body.
func NewMovement(body RigidBody, voice Voice, boosters Boosters, thrust, rotation float64) *Movement {
	return &Movement{
		body:     body,
		voice:    voice,
		boosters: boosters,
		thrust:   thrust,
		rotation: rotation,
		enabled:  true,
	}
}

// Enabled reports whether Movement still reacts to input.
func (m *Movement) Enabled() bool {
	return m.enabled
}

// Disable stops all further input processing, including quit.
func (m *Movement) Disable() {
	m.enabled = false
}

// Tick processes one frame of input over dt seconds.
// Returns true if the player asked to quit.
func (m *Movement) Tick(in core.InputFrame, dt float64) bool {
	if !m.enabled {
		return false
	}
	if dt < 0 {
		dt = 0
	}

	m.processThrust(in, dt)
	m.processRotation(in, dt)

	return in.Has(core.ActionQuit)
}

func (m *Movement) processThrust(in core.InputFrame, dt float64) {
	if !in.Has(core.ActionThrust) {
		m.voice.Stop()
		m.boosters.Main.Stop()
		return
	}

	m.body.AddRelativeForce(core.V(0, -1).Scale(m.thrust * dt))

	if !m.voice.IsPlaying() {
		m.voice.PlayLoop(core.ClipEngine)
	}
	if !m.boosters.Main.IsPlaying() {
		m.boosters.Main.Play()
	}
}

func (m *Movement) processRotation(in core.InputFrame, dt float64) {
	left := in.Has(core.ActionRotateLeft)
	right := in.Has(core.ActionRotateRight)

	switch {
	case left && !right:
		m.applyRotation(m.rotation * dt)
		if !m.boosters.Left.IsPlaying() {
			m.boosters.Left.Play()
		}
	case right && !left:
		m.applyRotation(-m.rotation * dt)
		if !m.boosters.Right.IsPlaying() {
			m.boosters.Right.Play()
		}
	default:
		m.boosters.Left.Stop()
		m.boosters.Right.Stop()
	}
}

// applyRotation sets the orientation directly with rotational physics
// suspended so that leftover spin does not fight the input.
func (m *Movement) applyRotation(degrees float64) {
	m.body.SetFreezeRotation(true)
	m.body.Rotate(degrees)
	m.body.SetFreezeRotation(false)
}
