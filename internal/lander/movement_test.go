package lander

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/physics"
)

type movementRig struct {
	body              *fakeBody
	voice             *fakeVoice
	main, left, right *fakeEffect
	movement          *Movement
}

func newMovementRig(thrust, rotation float64) *movementRig {
	r := &movementRig{
		body:  &fakeBody{},
		voice: &fakeVoice{},
		main:  &fakeEffect{},
		left:  &fakeEffect{},
		right: &fakeEffect{},
	}
	r.movement = NewMovement(r.body, r.voice, Boosters{Main: r.main, Left: r.left, Right: r.right}, thrust, rotation)
	return r
}

func TestThrustImpulseMagnitude(t *testing.T) {
	for _, dt := range []float64{0, 1.0 / 120, 1.0 / 60, 0.25, 1} {
		r := newMovementRig(1000, 100)
		r.movement.Tick(core.FrameOf(core.ActionThrust), dt)

		if len(r.body.forces) != 1 {
			t.Fatalf("dt=%v: expected one impulse, got %d", dt, len(r.body.forces))
		}
		f := r.body.forces[0]
		if !core.ApproxEqual(f.Len(), 1000*dt, 1e-9) || f.X != 0 || f.Y > 0 {
			t.Errorf("dt=%v: impulse = %+v, want %v along up", dt, f, 1000*dt)
		}
	}
}

func TestThrustFeedback(t *testing.T) {
	r := newMovementRig(1000, 100)
	thrust := core.FrameOf(core.ActionThrust)

	r.movement.Tick(thrust, 0.016)
	r.movement.Tick(thrust, 0.016)

	if !r.voice.playing || r.voice.clip != core.ClipEngine {
		t.Errorf("engine should loop while thrusting: %+v", r.voice)
	}
	if r.voice.loops != 1 || r.main.plays != 1 {
		t.Errorf("starting feedback must be idempotent: loops=%d plays=%d", r.voice.loops, r.main.plays)
	}

	r.movement.Tick(core.NewInputFrame(), 0.016)
	if r.voice.playing || r.main.playing {
		t.Error("releasing thrust should stop sound and booster immediately")
	}
	if len(r.body.forces) != 2 {
		t.Errorf("no impulse expected without thrust, got %d total", len(r.body.forces))
	}
}

func TestRotation(t *testing.T) {
	tests := []struct {
		name    string
		in      core.InputFrame
		want    []float64
		leftFX  bool
		rightFX bool
	}{
		{"left", core.FrameOf(core.ActionRotateLeft), []float64{50}, true, false},
		{"right", core.FrameOf(core.ActionRotateRight), []float64{-50}, false, true},
		{"both", core.FrameOf(core.ActionRotateLeft, core.ActionRotateRight), nil, false, false},
		{"neither", core.NewInputFrame(), nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newMovementRig(1000, 100)
			r.left.playing = !tt.leftFX && tt.want == nil
			r.right.playing = !tt.rightFX && tt.want == nil

			r.movement.Tick(tt.in, 0.5)

			if len(r.body.rotations) != len(tt.want) {
				t.Fatalf("rotations = %v, want %v", r.body.rotations, tt.want)
			}
			for i := range tt.want {
				if r.body.rotations[i] != tt.want[i] {
					t.Errorf("rotation = %v, want %v", r.body.rotations[i], tt.want[i])
				}
			}
			if tt.want != nil && (len(r.body.freezes) != 2 || !r.body.freezes[0] || r.body.freezes[1]) {
				t.Errorf("rotation should freeze then restore physics, got %v", r.body.freezes)
			}
			if r.left.playing != tt.leftFX || r.right.playing != tt.rightFX {
				t.Errorf("boosters left=%v right=%v, want %v %v", r.left.playing, r.right.playing, tt.leftFX, tt.rightFX)
			}
		})
	}
}

func TestRotationLeavesOppositeBooster(t *testing.T) {
	r := newMovementRig(1000, 100)

	r.movement.Tick(core.FrameOf(core.ActionRotateRight), 0.1)
	r.movement.Tick(core.FrameOf(core.ActionRotateLeft), 0.1)

	if !r.left.playing || !r.right.playing {
		t.Errorf("switching direction starts the new booster and leaves the old one: left=%v right=%v",
			r.left.playing, r.right.playing)
	}
}

func TestQuitAndDisable(t *testing.T) {
	r := newMovementRig(1000, 100)

	if !r.movement.Tick(core.FrameOf(core.ActionQuit), 0.016) {
		t.Error("quit key should be reported")
	}

	r.movement.Disable()
	all := core.FrameOf(core.ActionThrust, core.ActionRotateLeft, core.ActionQuit)
	if r.movement.Tick(all, 0.016) {
		t.Error("disabled movement must not report quit")
	}
	if len(r.body.forces) != 0 || len(r.body.rotations) != 0 || r.main.plays != 0 {
		t.Error("disabled movement must not touch the body or effects")
	}
}

func TestThrustOneSecondReachesCoefficient(t *testing.T) {
	body := physics.NewBody(core.V(0, 0), 1, 1, 1)
	m := NewMovement(body, &fakeVoice{}, Boosters{Main: &fakeEffect{}, Left: &fakeEffect{}, Right: &fakeEffect{}}, 1000, 100)

	dt := 1.0 / 60
	for i := 0; i < 60; i++ {
		m.Tick(core.FrameOf(core.ActionThrust), dt)
		body.Integrate(dt)
	}

	speed := body.Velocity.Len()
	if math.Abs(speed-1000) > 1e-6 {
		t.Errorf("speed after 1s = %v, want 1000", speed)
	}
	if body.Velocity.Y >= 0 {
		t.Errorf("velocity %+v should point up", body.Velocity)
	}
}
