package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/lander"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

// Model is the Bubble Tea model for a running lander game.
type Model struct {
	game      *lander.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keys      *KeyMapper
	hold      *core.HoldTracker
	tick      int
	gameState core.GameState
	onLeave   tea.Cmd // Returned when the player leaves with the quit action
	quitting  bool
	leaving   bool
}

// NewModel creates a model for game. Continuous actions stay held for
// holdTicks ticks after each key press. If no scene is loaded when the
// program starts, the first scene of the build list is started.
func NewModel(game *lander.Game, store *storage.Store, cfg core.RuntimeConfig, holdTicks int) Model {
	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		config:  cfg,
		keys:    NewKeyMapper(),
		hold:    core.NewHoldTracker(holdTicks),
		onLeave: tea.Quit,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	if !m.game.Loaded() {
		lander.NewMainMenu(m.game, nil).Start()
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.Press(msg, m.hold, m.tick) {
		m.quitting = true
		m.game.Shutdown()
		return m, tea.Quit
	}
	return m, nil
}

// handleTick runs one simulation step with the currently held actions.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.leaving || m.quitting {
		return m, nil
	}

	frame := m.hold.Frame(m.tick)
	m.tick++

	result := m.game.Step(frame)
	m.gameState = result.State
	m.saveFlights(result.Flights)

	if m.gameState.Quit {
		m.leaving = true
		m.hold.Reset()
		m.game.Shutdown()
		return m, m.onLeave
	}

	return m, tickCmd(m.config.TickRate)
}

// saveFlights persists finished flights. Storage is optional.
func (m Model) saveFlights(flights []core.FlightEnded) {
	if m.store == nil {
		return
	}
	for _, f := range flights {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveFlight(f.LevelID, f.Outcome, f.Duration)
	}
}

// saveScreenshot saves the current screen to ~/.lander/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".lander", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s_%s.txt", m.game.ID(), m.game.Level().ID, timestamp)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.leaving {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if the player closed the program.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Left returns true if the player left the game with the quit action.
func (m Model) Left() bool {
	return m.leaving
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts a Bubble Tea program that plays game until the player leaves.
func Run(game *lander.Game, store *storage.Store, cfg core.RuntimeConfig, holdTicks int) error {
	model := NewModel(game, store, cfg, holdTicks)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
