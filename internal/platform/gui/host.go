// Package gui runs the lander in an Ebitengine window.
// Unlike the terminal host it sees real key-up events, so held keys are
// polled every tick instead of being inferred from repeats.
package gui

import (
	"errors"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/lander"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

// Cell size in pixels, matching the 7x13 bitmap font plus spacing.
const (
	cellW = 8
	cellH = 14
)

var background = color.RGBA{0x0b, 0x0d, 0x17, 0xff}

// Host adapts a lander.Game to ebiten.Game.
type Host struct {
	game   *lander.Game
	store  *storage.Store
	logger *log.Logger
	screen *core.Screen
	face   text.Face
}

// NewHost creates a window host drawing a grid of rt.ScreenW x rt.ScreenH cells.
func NewHost(game *lander.Game, store *storage.Store, rt core.RuntimeConfig, logger *log.Logger) *Host {
	if logger == nil {
		logger = log.Default()
	}
	return &Host{
		game:   game,
		store:  store,
		logger: logger,
		screen: core.NewScreen(rt.ScreenW, rt.ScreenH),
		face:   text.NewGoXFace(basicfont.Face7x13),
	}
}

// Update runs one simulation step with the keys held right now.
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	result := h.game.Step(pollInput())
	for _, f := range result.Flights {
		if h.store == nil {
			break
		}
		if _, err := h.store.SaveFlight(f.LevelID, f.Outcome, f.Duration); err != nil {
			h.logger.Warn("cannot save flight", "level", f.LevelID, "err", err)
		}
	}

	if result.State.Quit {
		return ebiten.Termination
	}
	return nil
}

// pollInput reads the keyboard. Movement keys are level-triggered, commands
// fire once per press.
func pollInput() core.InputFrame {
	f := core.NewInputFrame()
	if anyPressed(ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp) {
		f.Set(core.ActionThrust)
	}
	if anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft) {
		f.Set(core.ActionRotateLeft)
	}
	if anyPressed(ebiten.KeyD, ebiten.KeyArrowRight) {
		f.Set(core.ActionRotateRight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		f.Set(core.ActionQuit)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		f.Set(core.ActionPause)
	}
	return f
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// Draw paints the game's cell buffer.
func (h *Host) Draw(dst *ebiten.Image) {
	dst.Fill(background)
	h.game.Render(h.screen)

	for y := range h.screen.Height() {
		for x := range h.screen.Width() {
			cell := h.screen.GetCell(x, y)
			if cell.Rune == ' ' {
				continue
			}
			h.drawCell(dst, x, y, cell)
		}
	}
}

// Layout reports the fixed logical size of the grid.
func (h *Host) Layout(_, _ int) (int, int) {
	return h.screen.Width() * cellW, h.screen.Height() * cellH
}

// Run opens a window and plays until the player quits or closes it.
func Run(game *lander.Game, store *storage.Store, rt core.RuntimeConfig, logger *log.Logger) error {
	h := NewHost(game, store, rt, logger)
	if !game.Loaded() {
		lander.NewMainMenu(game, nil).Start()
	}

	ebiten.SetWindowSize(rt.ScreenW*cellW, rt.ScreenH*cellH)
	ebiten.SetWindowTitle(game.Title())
	if rt.TickRate > 0 {
		ebiten.SetTPS(rt.TickRate)
	}

	err := ebiten.RunGame(h)
	game.Shutdown()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
