package lander

import (
	"testing"

	"github.com/vovakirdan/tui-lander/internal/core"
)

func TestLevelMusicSpawnsOnce(t *testing.T) {
	v := &fakeVoice{}
	m := NewLevelMusic(v)

	if m.Playing() {
		t.Error("music should not play before the first spawn")
	}
	if !m.Spawn() {
		t.Fatal("first spawn should start the track")
	}
	for i := 0; i < 4; i++ {
		if m.Spawn() {
			t.Fatal("later spawns must be no-ops")
		}
	}
	if v.loops != 1 || v.clip != core.ClipMusic {
		t.Errorf("track started %d times with %v, want once with music", v.loops, v.clip)
	}
	if !m.Playing() {
		t.Error("music should be playing")
	}

	m.Stop()
	if m.Playing() {
		t.Error("stopped music still playing")
	}
}

func TestMainMenu(t *testing.T) {
	scenes := &fakeScenes{current: 3, count: 5}
	quit := 0
	menu := NewMainMenu(scenes, func() { quit++ })

	menu.Start()
	if len(scenes.loads) != 1 || scenes.loads[0] != 0 {
		t.Errorf("Start loads = %v, want [0]", scenes.loads)
	}

	menu.Quit()
	if quit != 1 {
		t.Errorf("Quit called %d times, want 1", quit)
	}

	NewMainMenu(scenes, nil).Quit()
}
