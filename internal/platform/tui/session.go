package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lander/internal/audio"
	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/lander"
	"github.com/vovakirdan/tui-lander/internal/registry"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

// sessionMode is the screen a session is showing.
type sessionMode int

const (
	modeMenu sessionMode = iota
	modeGame
	modeScores
)

// SessionConfig describes one interactive session.
type SessionConfig struct {
	Build   *registry.Build
	Store   *storage.Store
	Lander  config.LanderConfig
	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

// SessionModel manages the full flow of one player: menu -> game -> menu,
// plus the flight log. The session owns its game and its music, both silent.
type SessionModel struct {
	build     *registry.Build
	store     *storage.Store
	config    core.RuntimeConfig
	holdTicks int
	game      *lander.Game
	music     *lander.LevelMusic
	title     lander.MainMenu
	exit      *bool // Set by the title screen's quit command
	mode      sessionMode
	menu      MenuModel
	gameModel *Model
	scores    *ScoreboardModel
	quitting  bool
}

// NewSessionModel creates a session with a fresh game.
func NewSessionModel(cfg SessionConfig) SessionModel {
	music := lander.NewLevelMusic(audio.Silent().NewChannel())
	game := lander.New(cfg.Build, cfg.Lander,
		lander.WithMusic(music),
		lander.WithLogger(cfg.Logger),
	)
	game.Reset(cfg.Runtime)

	exit := new(bool)
	return SessionModel{
		build:     cfg.Build,
		store:     cfg.Store,
		config:    cfg.Runtime,
		holdTicks: cfg.Lander.Input.HoldTicks(cfg.Runtime.TickRate),
		game:      game,
		music:     music,
		title:     lander.NewMainMenu(game, func() { *exit = true }),
		exit:      exit,
		menu:      NewMenuModel(cfg.Build.Len(), cfg.Runtime),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.mode {
	case modeGame:
		return m.updateGame(msg)
	case modeScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Chosen() {
	case ChoiceQuit:
		m.title.Quit()
		if *m.exit {
			return m.quit()
		}

	case ChoiceStart:
		m.title.Start()
		gm := NewModel(m.game, m.store, m.config, m.holdTicks)
		gm.onLeave = nil
		m.gameModel = &gm
		m.mode = modeGame
		return m, m.gameModel.Init()

	case ChoiceScores:
		sb := NewScoreboardModel(m.build, m.store, m.config.ScreenW, m.config.ScreenH)
		m.scores = &sb
		m.mode = modeScores
		return m, m.scores.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		return m.quit()
	}
	if m.gameModel.Left() {
		m.gameModel = nil
		return m.backToMenu()
	}

	return m, cmd
}

// updateScores handles updates when the flight log is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scores = &sb
	}

	if m.scores.IsQuitting() {
		return m.quit()
	}
	if m.scores.IsGoingBack() {
		m.scores = nil
		return m.backToMenu()
	}

	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.mode = modeMenu
	m.menu = NewMenuModel(m.build.Len(), m.config)
	return m, m.menu.Init()
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.game.Shutdown()
	m.music.Stop()
	return m, tea.Quit
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.mode {
	case modeGame:
		return m.gameModel.View()
	case modeScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// Game returns the session's game.
func (m SessionModel) Game() *lander.Game {
	return m.game
}

// IsQuitting returns true once the session has ended.
func (m SessionModel) IsQuitting() bool {
	return m.quitting
}
