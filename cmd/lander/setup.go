package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-lander/internal/audio"
	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/lander"
	"github.com/vovakirdan/tui-lander/internal/levels"
	"github.com/vovakirdan/tui-lander/internal/registry"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

// app holds everything a command needs to run the game.
type app struct {
	cfg    config.LanderConfig
	levels []levels.Level
	build  *registry.Build
	logger *log.Logger
	store  *storage.Store
	audio  *audio.Service
	music  *lander.LevelMusic

	closers []io.Closer
}

// newLogger creates a logger at the --log-level threshold.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "lander",
		Level:           level,
	}), nil
}

// openLogFile opens ~/.lander/lander.log for appending. The terminal
// belongs to the UI, so interactive commands log there.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".lander")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	return os.OpenFile(filepath.Join(dir, "lander.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

// loadConfig reads the tuning file and applies the difficulty preset.
func loadConfig() (config.LanderConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// loadLevels reads the level pack chosen by --levels, checking spawns
// against the configured rocket hitbox.
func loadLevels(rocket config.RocketConfig) ([]levels.Level, *levels.Loader, error) {
	loader := levels.Embedded()
	if flagLevelsDir != "" {
		loader = levels.NewLoader(flagLevelsDir)
	}
	loader.Hitbox = core.V(rocket.Width, rocket.Height)
	lvls, err := loader.LoadAll()
	if err != nil {
		return nil, loader, err
	}
	if len(lvls) == 0 {
		return nil, loader, errors.New("no valid levels found in " + loader.Root)
	}
	return lvls, loader, nil
}

// setupOptions selects the services a command needs.
type setupOptions struct {
	logTo   io.Writer // nil logs to ~/.lander/lander.log
	audio   bool
	storage bool
}

// setup loads configuration and levels and opens the optional services.
// Missing storage or audio only produce warnings.
func setup(opts setupOptions) (*app, error) {
	a := &app{}

	logTo := opts.logTo
	if logTo == nil {
		f, err := openLogFile()
		if err != nil {
			logTo = io.Discard
		} else {
			logTo = f
			a.closers = append(a.closers, f)
		}
	}
	logger, err := newLogger(logTo)
	if err != nil {
		a.close()
		return nil, err
	}
	a.logger = logger

	if a.cfg, err = loadConfig(); err != nil {
		a.close()
		return nil, err
	}

	lvls, loader, err := loadLevels(a.cfg.Rocket)
	if err != nil {
		a.close()
		return nil, err
	}
	for _, p := range loader.Problems {
		logger.Warn("skipped level file", "err", p)
	}
	a.levels = lvls
	a.build = registry.FromLevels(lvls)

	if opts.storage {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open flight log: %v\n", err)
			logger.Warn("storage unavailable", "err", err)
		} else {
			a.store = store
		}
	}

	a.audio = audio.Silent()
	if opts.audio {
		svc, err := audio.NewService(audio.Config{
			Enabled:      a.cfg.Audio.Enabled,
			MasterVolume: a.cfg.Audio.MasterVolume,
			EngineVolume: a.cfg.Audio.EngineVolume,
			MusicVolume:  a.cfg.Audio.MusicVolume,
		})
		if err != nil {
			logger.Warn("audio unavailable, continuing silently", "err", err)
		}
		a.audio = svc
	}
	a.music = lander.NewLevelMusic(a.audio.NewChannel())

	return a, nil
}

// newGame creates a game wired to the app's services.
func (a *app) newGame() *lander.Game {
	g := lander.New(a.build, a.cfg,
		lander.WithLogger(a.logger),
		lander.WithVoices(func() lander.Voice { return a.audio.NewChannel() }),
		lander.WithMusic(a.music),
	)
	g.Reset(a.runtimeConfig())
	return g
}

// runtimeConfig sizes the screen to the terminal, or to the largest level
// for the desktop window.
func (a *app) runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	if flagGUI {
		for _, lvl := range a.levels {
			cfg.ScreenW = max(cfg.ScreenW, lvl.Width)
			cfg.ScreenH = max(cfg.ScreenH, lvl.Height+3)
		}
		return cfg
	}

	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

// holdTicks is how long a terminal key press keeps an action held.
func (a *app) holdTicks() int {
	return a.cfg.Input.HoldTicks(flagFPS)
}

// close releases every service. The music is host-owned and stops here.
func (a *app) close() {
	if a.music != nil {
		a.music.Stop()
	}
	if a.audio != nil {
		a.audio.Close()
	}
	if a.store != nil {
		a.store.Close()
	}
	for _, c := range a.closers {
		c.Close()
	}
}
