package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/lander"
	"github.com/vovakirdan/tui-lander/internal/levels"
	"github.com/vovakirdan/tui-lander/internal/registry"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

func testBuild() *registry.Build {
	lvl := func(id string) levels.Level {
		return levels.Level{
			ID:     id,
			Name:   "Pad " + id,
			Width:  20,
			Height: 20,
			Spawn:  core.V(10.5, 5.5),
			Colliders: []levels.Collider{
				{Tag: levels.TagFinish, Rect: core.NewRect(5, 10, 10, 1)},
			},
		}
	}
	return registry.FromLevels([]levels.Level{lvl("t1"), lvl("t2")})
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 24, TickRate: 60, Seed: 3}
}

func newTestGame(t *testing.T) *lander.Game {
	t.Helper()
	cfg := config.DefaultLanderConfig()
	cfg.Physics.Gravity = 10
	g := lander.New(testBuild(), cfg)
	g.Reset(testRuntime())
	return g
}

func tick(t *testing.T, m tea.Model) tea.Model {
	t.Helper()
	next, _ := m.Update(TickMsg{})
	return next
}

func TestModelStartsFirstScene(t *testing.T) {
	game := newTestGame(t)
	m := NewModel(game, nil, testRuntime(), 10)

	if cmd := m.Init(); cmd == nil {
		t.Error("Init should start the tick loop")
	}
	if !game.Loaded() || game.CurrentIndex() != 0 {
		t.Fatalf("Init should load scene 0, loaded=%v index=%d", game.Loaded(), game.CurrentIndex())
	}
	if !strings.Contains(m.View(), "Pad t1") {
		t.Error("View should show the level name")
	}
}

func TestModelSavesLanding(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "flights.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := newTestGame(t)
	var m tea.Model = NewModel(game, store, testRuntime(), 10)
	m.Init()

	for range 120 {
		m = tick(t, m)
	}

	stats, err := store.LevelStats("t1")
	if err != nil {
		t.Fatalf("LevelStats() failed: %v", err)
	}
	if stats.Landings != 1 || stats.Crashes != 0 {
		t.Errorf("stats = %+v, want one landing", stats)
	}
	if m.(Model).State().Landings != 1 {
		t.Errorf("Landings = %d, want 1", m.(Model).State().Landings)
	}
}

func TestModelLeavesOnEscape(t *testing.T) {
	game := newTestGame(t)
	var m tea.Model = NewModel(game, nil, testRuntime(), 10)
	m.Init()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m, cmd := m.Update(TickMsg{})

	model := m.(Model)
	if !model.Left() {
		t.Fatal("escape should leave the game")
	}
	if cmd == nil {
		t.Error("standalone model should quit the program")
	}
	if model.View() != "" {
		t.Error("View should be empty after leaving")
	}
}

func TestModelQuitKey(t *testing.T) {
	game := newTestGame(t)
	var m tea.Model = NewModel(game, nil, testRuntime(), 10)
	m.Init()

	m, cmd := m.Update(runeKey('q'))
	if !m.(Model).IsQuitting() || cmd == nil {
		t.Error("q should quit the program")
	}
}

func TestSessionFlow(t *testing.T) {
	var m tea.Model = NewSessionModel(SessionConfig{
		Build:   testBuild(),
		Lander:  config.DefaultLanderConfig(),
		Runtime: testRuntime(),
	})
	game := m.(SessionModel).Game()

	if !strings.Contains(m.View(), "Start") {
		t.Fatal("session should open on the title screen")
	}

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("starting should return the tick command")
	}
	if !game.Loaded() || game.CurrentIndex() != 0 {
		t.Fatal("Start should load the first scene")
	}
	if m.(SessionModel).mode != modeGame {
		t.Fatal("session should be in game mode")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = tick(t, m)
	if m.(SessionModel).mode != modeMenu {
		t.Fatal("leaving the game should return to the menu")
	}
	if m.(SessionModel).IsQuitting() {
		t.Fatal("leaving the game should not end the session")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.(SessionModel).mode != modeScores {
		t.Fatal("tab should open the flight log")
	}
	if !strings.Contains(m.View(), "unavailable") {
		t.Error("flight log without storage should say so")
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if m.(SessionModel).mode != modeMenu {
		t.Fatal("esc should close the flight log")
	}

	m, cmd = m.Update(runeKey('q'))
	if !m.(SessionModel).IsQuitting() || cmd == nil {
		t.Error("q on the title screen should end the session")
	}
}

func TestRenderScreenColors(t *testing.T) {
	s := core.NewScreen(3, 1)
	s.SetWithColor(0, 0, 'A', core.ColorRed)
	s.SetWithColor(1, 0, 'B', core.ColorRed)
	s.Set(2, 0, 'C')

	out := RenderScreen(s)
	if !strings.Contains(out, "AB") || !strings.Contains(out, "C") {
		t.Errorf("RenderScreen() = %q, want runs AB and C", out)
	}
}
