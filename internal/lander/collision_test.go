package lander

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-lander/internal/core"
)

type handlerRig struct {
	clock    *manualClock
	sched    *Scheduler
	scenes   *fakeScenes
	voice    *fakeVoice
	crash    *fakeEffect
	movement *Movement
	handler  *CollisionHandler
}

func newHandlerRig(current, count int) *handlerRig {
	r := &handlerRig{
		clock:  &manualClock{},
		scenes: &fakeScenes{current: current, count: count},
		voice:  &fakeVoice{playing: true},
		crash:  &fakeEffect{},
	}
	r.sched = NewScheduler(r.clock.now)
	r.movement = NewMovement(&fakeBody{}, r.voice,
		Boosters{Main: &fakeEffect{}, Left: &fakeEffect{}, Right: &fakeEffect{}}, 1000, 100)
	r.handler = NewCollisionHandler(HandlerConfig{
		Voice:        r.voice,
		CrashEffect:  r.crash,
		Movement:     r.movement,
		Scheduler:    r.sched,
		Scenes:       r.scenes,
		SuccessDelay: 2 * time.Second,
		CrashDelay:   time.Second,
	})
	return r
}

func (r *handlerRig) advance(seconds float64) {
	r.clock.t += seconds
	r.sched.Advance()
}

func TestFinishStartsSuccessSequence(t *testing.T) {
	r := newHandlerRig(0, 3)

	if got := r.handler.OnCollisionEnter(TagFinish); got != ReactionLanded {
		t.Fatalf("reaction = %v, want landed", got)
	}
	if !r.handler.Transitioning() {
		t.Error("handler should be transitioning")
	}
	if r.movement.Enabled() {
		t.Error("movement should be disabled")
	}
	if r.voice.playing {
		t.Error("vehicle sound should be stopped")
	}
	if len(r.voice.onces) != 0 || r.crash.plays != 0 {
		t.Error("landing plays no crash feedback")
	}
	if r.sched.Pending() != 1 {
		t.Fatalf("expected exactly one scheduled task, got %d", r.sched.Pending())
	}

	r.advance(1.9)
	if len(r.scenes.loads) != 0 {
		t.Fatal("scene loaded before the success delay")
	}
	r.advance(0.1)
	if len(r.scenes.loads) != 1 || r.scenes.loads[0] != 1 {
		t.Errorf("loads = %v, want [1]", r.scenes.loads)
	}
}

func TestFinishTarget(t *testing.T) {
	tests := []struct {
		current, count, want int
	}{
		{0, 3, 1},
		{1, 3, 2},
		{2, 3, 0},
		{0, 1, 0},
	}
	for _, tt := range tests {
		r := newHandlerRig(tt.current, tt.count)
		r.handler.OnCollisionEnter(TagFinish)
		r.advance(2)
		if len(r.scenes.loads) != 1 || r.scenes.loads[0] != tt.want {
			t.Errorf("finish on %d of %d: loads = %v, want [%d]", tt.current, tt.count, r.scenes.loads, tt.want)
		}
	}
}

func TestCrashReloadsCurrent(t *testing.T) {
	r := newHandlerRig(2, 5)

	if got := r.handler.OnCollisionEnter(TagObstacle); got != ReactionCrashed {
		t.Fatalf("reaction = %v, want crashed", got)
	}
	if len(r.voice.onces) != 1 || r.voice.onces[0] != core.ClipCrash {
		t.Errorf("crash sound should play once, got %v", r.voice.onces)
	}
	if r.voice.stops != 1 {
		t.Errorf("engine should be stopped before the crash sound, stops=%d", r.voice.stops)
	}
	if r.crash.plays != 1 {
		t.Errorf("crash effect plays = %d, want 1", r.crash.plays)
	}
	if r.movement.Enabled() {
		t.Error("movement should be disabled")
	}

	r.advance(1)
	if len(r.scenes.loads) != 1 || r.scenes.loads[0] != 2 {
		t.Errorf("loads = %v, want [2]", r.scenes.loads)
	}
}

func TestUnknownTagCrashes(t *testing.T) {
	known := newHandlerRig(1, 3)
	unknown := newHandlerRig(1, 3)

	a := known.handler.OnCollisionEnter(TagObstacle)
	b := unknown.handler.OnCollisionEnter(ParseTag("Rock"))

	if a != b {
		t.Fatalf("unknown tag reaction %v differs from obstacle %v", b, a)
	}
	if len(known.voice.onces) != len(unknown.voice.onces) || known.crash.plays != unknown.crash.plays ||
		known.sched.Pending() != unknown.sched.Pending() {
		t.Error("unknown tag should behave exactly like an obstacle")
	}
}

func TestFriendlyStaysActive(t *testing.T) {
	r := newHandlerRig(0, 2)

	for i := 0; i < 3; i++ {
		if got := r.handler.OnCollisionEnter(TagFriendly); got != ReactionFriendly {
			t.Fatalf("reaction = %v, want friendly", got)
		}
	}
	if r.handler.Transitioning() || !r.movement.Enabled() || r.sched.Pending() != 0 {
		t.Error("friendly contact must not change state")
	}
	if !r.voice.playing {
		t.Error("friendly contact must not stop the engine")
	}
}

func TestTransitioningIgnoresEvents(t *testing.T) {
	for _, first := range []Tag{TagFinish, TagObstacle} {
		r := newHandlerRig(0, 3)
		r.handler.OnCollisionEnter(first)

		onces := len(r.voice.onces)
		plays := r.crash.plays
		for _, tag := range []Tag{TagFinish, TagObstacle, TagFriendly} {
			if got := r.handler.OnCollisionEnter(tag); got != ReactionIgnored {
				t.Errorf("after %v: %v reaction = %v, want ignored", first, tag, got)
			}
		}
		if r.sched.Pending() != 1 || len(r.voice.onces) != onces || r.crash.plays != plays {
			t.Errorf("after %v: repeated contacts must schedule and play nothing", first)
		}
	}
}

func TestParseTag(t *testing.T) {
	tests := []struct {
		in   string
		want Tag
	}{
		{"Friendly", TagFriendly},
		{"friendly", TagFriendly},
		{"Finish", TagFinish},
		{" FINISH ", TagFinish},
		{"Obstacle", TagObstacle},
		{"", TagObstacle},
		{"Untagged", TagObstacle},
	}
	for _, tt := range tests {
		if got := ParseTag(tt.in); got != tt.want {
			t.Errorf("ParseTag(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
