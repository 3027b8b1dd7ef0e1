package lander

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/levels"
	"github.com/vovakirdan/tui-lander/internal/physics"
	"github.com/vovakirdan/tui-lander/internal/registry"
)

// contactSlop is how far apart two boxes may be and still count as touching.
const contactSlop = 0.01

// boundsContact is the contact key used for leaving the level area.
const boundsContact = -1

// solid is one static collider of the current scene.
type solid struct {
	tag Tag
	box core.Box
}

// obstacle is a moving block driven by an oscillator.
type obstacle struct {
	osc  *Oscillator
	w, h float64
	pos  core.Vec2 // Top-left corner
}

func (o *obstacle) box() core.Box {
	return core.Box{Min: o.pos, Max: o.pos.Add(core.V(o.w, o.h))}
}

// Game is the scene manager and per-tick simulation loop. It implements
// SceneLoader over a registry build list.
type Game struct {
	cfg      config.LanderConfig
	rt       core.RuntimeConfig
	build    *registry.Build
	music    *LevelMusic
	newVoice func() Voice
	logger   *log.Logger
	rng      *rand.Rand

	clock float64
	sched *Scheduler
	state core.GameState

	// Current scene. Everything below is rebuilt by LoadScene.
	loaded    bool
	index     int
	level     levels.Level
	statics   []solid
	obstacles []*obstacle
	body      *physics.Body
	world     *physics.World
	voice     Voice
	movement  *Movement
	handler   *CollisionHandler
	main      *Emitter
	left      *Emitter
	right     *Emitter
	crash     *Emitter
	contacts  map[int]bool
	launched  float64
	outcome   core.Outcome
	flights   []core.FlightEnded
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithMusic hands the game the host-owned background music.
func WithMusic(m *LevelMusic) Option {
	return func(g *Game) {
		g.music = m
	}
}

// WithVoices sets the factory for vehicle audio sources. The default is
// muted.
func WithVoices(f func() Voice) Option {
	return func(g *Game) {
		g.newVoice = f
	}
}

// New creates a game over build. No scene is loaded until LoadScene.
func New(build *registry.Build, cfg config.LanderConfig, opts ...Option) *Game {
	g := &Game{
		cfg:      cfg,
		rt:       core.DefaultConfig(),
		build:    build,
		newVoice: func() Voice { return &mutedVoice{} },
		logger:   log.New(io.Discard),
		rng:      rand.New(rand.NewSource(1)),
	}
	g.sched = NewScheduler(func() float64 { return g.clock })
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "lander"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Lander"
}

// Reset applies runtime settings and clears session counters.
// The current scene, if any, is reloaded.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.clock = 0
	g.state = core.GameState{}
	g.flights = nil
	if g.loaded {
		g.LoadScene(g.index)
	}
}

// LoadScene replaces the current scene with build index i. An index out of
// range loads the first scene.
func (g *Game) LoadScene(i int) {
	lvl, err := g.build.Scene(i)
	if err != nil {
		g.logger.Error("cannot load scene, falling back to first", "index", i, "err", err)
		i = 0
		if lvl, err = g.build.Scene(0); err != nil {
			g.logger.Error("build list is empty", "err", err)
			return
		}
	}

	// The old vehicle goes away with its sounds and pending transitions.
	if g.voice != nil {
		g.voice.Stop()
	}
	g.sched.Clear()

	g.index = i
	g.level = lvl
	g.loaded = true
	g.state.Scene = i
	g.state.Paused = false
	g.state.Quit = false
	g.spawn()

	if g.music != nil && g.music.Spawn() {
		g.logger.Debug("level music started")
	}
	g.logger.Info("scene loaded", "index", i, "level", lvl.ID, "name", lvl.Name)
}

// CurrentIndex returns the build index of the loaded scene.
func (g *Game) CurrentIndex() int {
	return g.index
}

// SceneCount returns the number of scenes in the build list.
func (g *Game) SceneCount() int {
	return g.build.Len()
}

// Loaded reports whether a scene is active.
func (g *Game) Loaded() bool {
	return g.loaded
}

// Level returns the active level.
func (g *Game) Level() levels.Level {
	return g.level
}

// Transitioning reports whether the vehicle has landed or crashed.
func (g *Game) Transitioning() bool {
	return g.handler != nil && g.handler.Transitioning()
}

// spawn builds the vehicle, its handlers and the scene's obstacles.
func (g *Game) spawn() {
	lvl := g.level
	phys := g.cfg.Physics

	g.body = physics.NewBody(lvl.Spawn, phys.Mass, g.cfg.Rocket.Width, g.cfg.Rocket.Height)
	g.body.Gravity = core.V(0, phys.Gravity)
	g.body.MaxSpeed = phys.MaxSpeed

	g.voice = g.newVoice()
	g.main = NewEmitter(mainBoosterFX, g.rng)
	g.left = NewEmitter(sideBoosterFX, g.rng)
	g.right = NewEmitter(sideBoosterFX, g.rng)
	g.crash = NewEmitter(crashFX, g.rng)

	g.movement = NewMovement(g.body, g.voice, Boosters{Main: g.main, Left: g.left, Right: g.right},
		phys.Thrust, phys.Rotation)
	g.handler = NewCollisionHandler(HandlerConfig{
		Voice:        g.voice,
		CrashEffect:  g.crash,
		Movement:     g.movement,
		Scheduler:    g.sched,
		Scenes:       g,
		Logger:       g.logger,
		SuccessDelay: g.cfg.Timing.SuccessDelayDuration(),
		CrashDelay:   g.cfg.Timing.CrashDelayDuration(),
	})

	// Collider ids: statics first, then obstacles, matching delivery order.
	g.world = physics.NewWorld(lvl.Width, lvl.Height, g.body, contactSlop)
	g.statics = g.statics[:0]
	for i, c := range lvl.Colliders {
		s := solid{tag: ParseTag(c.Tag), box: c.Rect.Box()}
		g.statics = append(g.statics, s)
		g.world.Add(i, s.box, s.tag.String())
	}

	g.obstacles = g.obstacles[:0]
	for i, o := range lvl.Obstacles {
		base := core.V(float64(o.Rect.X), float64(o.Rect.Y))
		osc := NewOscillator(base, o.Move, o.Period)
		ob := &obstacle{
			osc: osc,
			w:   float64(o.Rect.W),
			h:   float64(o.Rect.H),
			pos: osc.Position(g.clock),
		}
		g.obstacles = append(g.obstacles, ob)
		g.world.Add(len(g.statics)+i, ob.box(), TagObstacle.String())
	}

	g.contacts = make(map[int]bool)
	g.launched = g.clock
	g.outcome = core.OutcomeNone
	g.aimEffects()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !g.loaded {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
		if g.state.Paused {
			g.voice.Stop()
		}
	}
	if g.state.Paused {
		// Quit still works while paused, unless the vehicle is already done.
		if in.Has(core.ActionQuit) && g.movement.Enabled() {
			g.state.Quit = true
		}
		return core.StepResult{State: g.State()}
	}

	dt := g.rt.TickSeconds()
	g.clock += dt

	if g.movement.Tick(in, dt) {
		g.state.Quit = true
		return core.StepResult{State: g.State()}
	}

	for i, o := range g.obstacles {
		o.pos = o.osc.Position(g.clock)
		g.world.Move(len(g.statics)+i, o.pos)
	}

	g.body.Integrate(dt)
	g.resolveContacts()
	g.aimEffects()
	g.updateEffects(dt)

	g.sched.Advance()

	return core.StepResult{State: g.State(), Flights: g.drainFlights()}
}

// resolveContacts pushes the body out of the colliders it overlaps and
// delivers newly started contacts to the collision handler.
func (g *Game) resolveContacts() {
	contacts := g.world.Resolve()
	touching := make(map[int]Tag, len(contacts)+1)
	var started []int

	// Bounds first, then colliders by id.
	if !g.body.Box().Inside(g.level.Bounds()) {
		touching[boundsContact] = TagObstacle
		if !g.contacts[boundsContact] {
			started = append(started, boundsContact)
		}
	}
	for _, c := range contacts {
		touching[c.ID] = ParseTag(c.Tag)
		if !g.contacts[c.ID] {
			started = append(started, c.ID)
		}
	}

	for _, id := range started {
		g.react(touching[id])
	}

	g.contacts = make(map[int]bool, len(touching))
	for id := range touching {
		g.contacts[id] = true
	}
}

func (g *Game) react(tag Tag) {
	switch g.handler.OnCollisionEnter(tag) {
	case ReactionLanded:
		g.finish(core.OutcomeLanded)
		g.state.Landings++
		g.logger.Info("landed", "level", g.level.ID, "flight", g.flightTime())
	case ReactionCrashed:
		g.finish(core.OutcomeCrashed)
		g.state.Crashes++
		g.logger.Info("crashed", "level", g.level.ID, "tag", tag, "flight", g.flightTime())
	}
}

// finish records the vehicle's single terminal outcome.
func (g *Game) finish(o core.Outcome) {
	g.outcome = o
	g.flights = append(g.flights, core.FlightEnded{
		LevelID:  g.level.ID,
		Outcome:  o,
		Duration: g.flightTime(),
	})
}

func (g *Game) flightTime() time.Duration {
	return time.Duration((g.clock - g.launched) * float64(time.Second)).Round(time.Millisecond)
}

func (g *Game) drainFlights() []core.FlightEnded {
	if len(g.flights) == 0 {
		return nil
	}
	out := g.flights
	g.flights = nil
	return out
}

// aimEffects keeps the flames attached to the vehicle.
func (g *Game) aimEffects() {
	up := g.body.Up()
	side := core.V(-up.Y, up.X) // Points to the vehicle's right
	pos := g.body.Position

	g.main.Aim(pos.Sub(up.Scale(g.cfg.Rocket.Height)), up.Scale(-1))
	// Turning left fires the right-hand thruster outward, and vice versa.
	g.left.Aim(pos.Add(side.Scale(g.cfg.Rocket.Width)), side)
	g.right.Aim(pos.Sub(side.Scale(g.cfg.Rocket.Width)), side.Scale(-1))
	g.crash.Aim(pos, up)
}

// updateEffects ages particles and emits new ones.
func (g *Game) updateEffects(dt float64) {
	g.main.Update(dt)
	g.left.Update(dt)
	g.right.Update(dt)
	g.crash.Update(dt)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.state
}

// Shutdown silences the vehicle. The host stops the music it owns.
func (g *Game) Shutdown() {
	if g.voice != nil {
		g.voice.Stop()
	}
	g.sched.Clear()
}
