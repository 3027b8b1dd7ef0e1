package lander

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// Reaction is what a contact event did to the vehicle.
type Reaction int

const (
	ReactionIgnored  Reaction = iota // Already transitioning
	ReactionFriendly                 // Safe touch, nothing changes
	ReactionLanded                   // Success sequence started
	ReactionCrashed                  // Crash sequence started
)

// String returns a human-readable name for the reaction.
func (r Reaction) String() string {
	switch r {
	case ReactionFriendly:
		return "friendly"
	case ReactionLanded:
		return "landed"
	case ReactionCrashed:
		return "crashed"
	default:
		return "ignored"
	}
}

// CollisionHandler decides the outcome of each contact and schedules the
// resulting scene load. After the first landing or crash it ignores every
// further contact until its vehicle is replaced.
type CollisionHandler struct {
	voice    Voice
	crash    Effect
	movement *Movement
	sched    *Scheduler
	scenes   SceneLoader
	logger   *log.Logger

	successDelay time.Duration
	crashDelay   time.Duration

	transitioning bool
}

// HandlerConfig holds the collaborators of a CollisionHandler.
type HandlerConfig struct {
	Voice        Voice
	CrashEffect  Effect
	Movement     *Movement
	Scheduler    *Scheduler
	Scenes       SceneLoader
	Logger       *log.Logger
	SuccessDelay time.Duration
	CrashDelay   time.Duration
}

// NewCollisionHandler creates a handler in the active state.
func NewCollisionHandler(cfg HandlerConfig) *CollisionHandler {
	return &CollisionHandler{
		voice:        cfg.Voice,
		crash:        cfg.CrashEffect,
		movement:     cfg.Movement,
		sched:        cfg.Scheduler,
		scenes:       cfg.Scenes,
		logger:       cfg.Logger,
		successDelay: cfg.SuccessDelay,
		crashDelay:   cfg.CrashDelay,
	}
}

// Transitioning reports whether a landing or crash sequence has started.
func (h *CollisionHandler) Transitioning() bool {
	return h.transitioning
}

// OnCollisionEnter handles the start of a contact with a collider tagged tag.
func (h *CollisionHandler) OnCollisionEnter(tag Tag) Reaction {
	if h.transitioning {
		return ReactionIgnored
	}

	switch tag {
	case TagFriendly:
		h.debug("Hit friendly")
		return ReactionFriendly
	case TagFinish:
		h.startSuccess()
		return ReactionLanded
	default:
		h.startCrash()
		return ReactionCrashed
	}
}

func (h *CollisionHandler) startSuccess() {
	h.transitioning = true
	h.voice.Stop()
	h.movement.Disable()

	next := nextScene(h.scenes)
	h.sched.Schedule(h.successDelay, func() {
		h.scenes.LoadScene(next)
	})
}

func (h *CollisionHandler) startCrash() {
	h.transitioning = true
	h.voice.Stop()
	h.voice.PlayOnce(core.ClipCrash)
	h.crash.Play()
	h.movement.Disable()

	current := h.scenes.CurrentIndex()
	h.sched.Schedule(h.crashDelay, func() {
		h.scenes.LoadScene(current)
	})
}

func (h *CollisionHandler) debug(msg string) {
	if h.logger != nil {
		h.logger.Debug(msg)
	}
}
