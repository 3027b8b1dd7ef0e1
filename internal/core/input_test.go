package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := FrameOf(ActionThrust, ActionRotateLeft)

	if !f.Has(ActionThrust) || !f.Has(ActionRotateLeft) {
		t.Error("FrameOf should set every given action")
	}
	if f.Has(ActionRotateRight) {
		t.Error("unset action reported as held")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionThrust) {
		t.Error("Clear should drop all actions")
	}
	if !clone.Has(ActionThrust) {
		t.Error("Clone should be independent of the original")
	}

	var zero InputFrame
	if zero.Has(ActionThrust) {
		t.Error("zero frame should hold nothing")
	}
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestHoldTrackerContinuous(t *testing.T) {
	h := NewHoldTracker(3)
	h.Press(ActionThrust, 10)

	for tick := 10; tick < 13; tick++ {
		if !h.Frame(tick).Has(ActionThrust) {
			t.Errorf("thrust should be held at tick %d", tick)
		}
	}
	if h.Frame(13).Has(ActionThrust) {
		t.Error("thrust should expire after the hold window")
	}

	// Auto-repeat extends the hold
	h.Press(ActionRotateLeft, 20)
	h.Press(ActionRotateLeft, 22)
	if !h.Frame(24).Has(ActionRotateLeft) {
		t.Error("repeated press should extend the hold")
	}

	h.Release(ActionRotateLeft)
	if h.Frame(24).Has(ActionRotateLeft) {
		t.Error("Release should end the hold immediately")
	}
}

func TestHoldTrackerPulses(t *testing.T) {
	h := NewHoldTracker(5)
	h.Press(ActionPause, 1)
	h.Press(ActionNone, 1)

	f := h.Frame(1)
	if !f.Has(ActionPause) {
		t.Error("pulse should be reported once")
	}
	if f.Has(ActionNone) {
		t.Error("ActionNone should be ignored")
	}
	if h.Frame(2).Has(ActionPause) {
		t.Error("pulse should be consumed by the first frame")
	}
}

func TestHoldTrackerReset(t *testing.T) {
	h := NewHoldTracker(0)
	h.Press(ActionThrust, 0)
	h.Press(ActionQuit, 0)
	h.Reset()

	f := h.Frame(0)
	if f.Has(ActionThrust) || f.Has(ActionQuit) {
		t.Error("Reset should drop held actions and pulses")
	}
}

func TestActionString(t *testing.T) {
	if ActionThrust.String() != "Thrust" {
		t.Errorf("ActionThrust.String() = %q", ActionThrust.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
