package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionThrust             // Space, W, Up arrow - main engine
	ActionRotateLeft         // A, Left arrow - rotate counter-clockwise
	ActionRotateRight        // D, Right arrow - rotate clockwise
	ActionQuit               // Escape - leave the game
	ActionPause              // P - pause/unpause game
	ActionConfirm            // Enter - confirm selection in menu
	ActionBack               // B - go back to menu
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionThrust:
		return "Thrust"
	case ActionRotateLeft:
		return "RotateLeft"
	case ActionRotateRight:
		return "RotateRight"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// An action present in the frame is held for the whole tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// FrameOf builds a frame with the given actions held.
func FrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// isContinuous reports whether an action models a held key rather than a
// one-off command.
func isContinuous(a Action) bool {
	switch a {
	case ActionThrust, ActionRotateLeft, ActionRotateRight:
		return true
	default:
		return false
	}
}

// HoldTracker turns discrete key presses into held key state.
// Terminals only report presses (and auto-repeat), never releases, so a
// continuous action stays held for a fixed number of ticks after its last
// press. One-off commands (quit, pause) are reported for exactly one frame.
type HoldTracker struct {
	holdTicks int
	expiry    map[Action]int
	pulses    map[Action]bool
}

// NewHoldTracker creates a tracker that keeps continuous actions held for
// holdTicks ticks after each press. holdTicks below 1 is treated as 1.
func NewHoldTracker(holdTicks int) *HoldTracker {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &HoldTracker{
		holdTicks: holdTicks,
		expiry:    make(map[Action]int),
		pulses:    make(map[Action]bool),
	}
}

// Press records a key press observed during tick.
func (h *HoldTracker) Press(a Action, tick int) {
	if a == ActionNone {
		return
	}
	if !isContinuous(a) {
		h.pulses[a] = true
		return
	}
	h.expiry[a] = tick + h.holdTicks
}

// Release forgets a continuous action immediately.
func (h *HoldTracker) Release(a Action) {
	delete(h.expiry, a)
}

// Frame returns the actions held during tick and consumes pending pulses.
func (h *HoldTracker) Frame(tick int) InputFrame {
	f := NewInputFrame()
	for a, until := range h.expiry {
		if tick < until {
			f.Set(a)
		} else {
			delete(h.expiry, a)
		}
	}
	for a := range h.pulses {
		f.Set(a)
		delete(h.pulses, a)
	}
	return f
}

// Reset drops all held actions and pending pulses.
func (h *HoldTracker) Reset() {
	clear(h.expiry)
	clear(h.pulses)
}
