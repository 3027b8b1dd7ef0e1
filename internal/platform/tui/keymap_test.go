package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-lander/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionThrust, false},
		{"w", runeKey('w'), core.ActionThrust, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionThrust, false},
		{"a", runeKey('a'), core.ActionRotateLeft, false},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionRotateLeft, false},
		{"d", runeKey('d'), core.ActionRotateRight, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRotateRight, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionQuit, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestPressHoldsContinuousActions(t *testing.T) {
	km := NewKeyMapper()
	hold := core.NewHoldTracker(3)

	if km.Press(runeKey('w'), hold, 0) {
		t.Fatal("thrust key should not quit")
	}
	km.Press(runeKey('p'), hold, 0)

	f := hold.Frame(0)
	if !f.Has(core.ActionThrust) || !f.Has(core.ActionPause) {
		t.Fatalf("frame 0 = %v, want thrust and pause", f.Actions)
	}
	f = hold.Frame(2)
	if !f.Has(core.ActionThrust) || f.Has(core.ActionPause) {
		t.Errorf("frame 2 = %v, want thrust only", f.Actions)
	}
	if hold.Frame(3).Has(core.ActionThrust) {
		t.Error("thrust should be released after the hold window")
	}

	if !km.Press(runeKey('q'), hold, 4) {
		t.Error("q should quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEscape}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
