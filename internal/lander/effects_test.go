package lander

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-lander/internal/core"
)

func TestLoopingEmitter(t *testing.T) {
	e := NewEmitter(mainBoosterFX, rand.New(rand.NewSource(1)))
	e.Aim(core.V(5, 5), core.V(0, 1))

	e.Play()
	e.Play()
	for i := 0; i < 30; i++ {
		e.Update(1.0 / 60)
	}
	if !e.IsPlaying() || e.Len() == 0 {
		t.Fatalf("looping emitter should be emitting, len=%d", e.Len())
	}

	e.Stop()
	if e.IsPlaying() {
		t.Error("stopped emitter still playing")
	}
	for i := 0; i < 60; i++ {
		e.Update(1.0 / 60)
	}
	if e.Len() != 0 {
		t.Errorf("particles should fade after stop, len=%d", e.Len())
	}
}

func TestBurstEmitterEnds(t *testing.T) {
	e := NewEmitter(crashFX, rand.New(rand.NewSource(1)))

	e.Play()
	if e.Len() != crashFX.Burst {
		t.Fatalf("burst = %d, want %d", e.Len(), crashFX.Burst)
	}
	for i := 0; i < 120 && e.IsPlaying(); i++ {
		e.Update(1.0 / 60)
	}
	if e.IsPlaying() || e.Len() != 0 {
		t.Errorf("burst should finish on its own, playing=%v len=%d", e.IsPlaying(), e.Len())
	}
}

func TestEmitterDraw(t *testing.T) {
	e := NewEmitter(crashFX, rand.New(rand.NewSource(1)))
	e.Aim(core.V(4.5, 4.5), core.V(0, -1))
	e.Play()

	screen := core.NewScreen(10, 10)
	e.Draw(screen, 0, 0)
	if got := screen.Get(4, 4); got != crashFX.Glyphs[0] {
		t.Errorf("fresh particle glyph = %q, want %q", got, crashFX.Glyphs[0])
	}
}
