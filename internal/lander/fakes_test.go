package lander

import "github.com/vovakirdan/tui-lander/internal/core"

type fakeBody struct {
	forces    []core.Vec2
	rotations []float64
	freezes   []bool
}

func (b *fakeBody) AddRelativeForce(f core.Vec2) { b.forces = append(b.forces, f) }
func (b *fakeBody) Rotate(d float64)             { b.rotations = append(b.rotations, d) }
func (b *fakeBody) SetFreezeRotation(f bool)     { b.freezes = append(b.freezes, f) }

type fakeVoice struct {
	playing bool
	clip    core.Clip
	loops   int
	onces   []core.Clip
	stops   int
}

func (v *fakeVoice) PlayLoop(c core.Clip) {
	v.playing = true
	v.clip = c
	v.loops++
}

func (v *fakeVoice) PlayOnce(c core.Clip) {
	v.playing = true
	v.clip = c
	v.onces = append(v.onces, c)
}

func (v *fakeVoice) Stop() {
	v.playing = false
	v.stops++
}

func (v *fakeVoice) IsPlaying() bool { return v.playing }

type fakeEffect struct {
	playing bool
	plays   int
}

func (e *fakeEffect) Play() {
	e.playing = true
	e.plays++
}

func (e *fakeEffect) Stop()           { e.playing = false }
func (e *fakeEffect) IsPlaying() bool { return e.playing }

type fakeScenes struct {
	current int
	count   int
	loads   []int
}

func (s *fakeScenes) LoadScene(i int) {
	s.loads = append(s.loads, i)
	s.current = i
}

func (s *fakeScenes) CurrentIndex() int { return s.current }
func (s *fakeScenes) SceneCount() int   { return s.count }

// manualClock is a settable game clock for schedulers under test.
type manualClock struct{ t float64 }

func (c *manualClock) now() float64 { return c.t }
