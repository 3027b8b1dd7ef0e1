package physics

import (
	"testing"

	"github.com/vovakirdan/tui-lander/internal/core"
)

func TestResolveLanding(t *testing.T) {
	pad := core.NewRect(0, 10, 10, 1).Box()
	b := NewBody(core.V(5, 9.4), 1, 1, 2)
	b.Velocity = core.V(1, 3)

	w := NewWorld(20, 20, b, 0.01)
	w.Add(0, pad, "Finish")

	contacts := w.Resolve()
	if len(contacts) != 1 || contacts[0].ID != 0 || contacts[0].Tag != "Finish" {
		t.Fatalf("contacts = %+v, want the pad", contacts)
	}
	if b.Box().Max.Y > pad.Min.Y+1e-9 {
		t.Errorf("body still penetrates the pad: %+v", b.Box())
	}
	if b.Velocity.Y != 0 {
		t.Errorf("vertical velocity should be cancelled, got %v", b.Velocity.Y)
	}
	if b.Velocity.X >= 1 {
		t.Errorf("resting contact should bleed drift, got %v", b.Velocity.X)
	}
}

func TestResolveSideWall(t *testing.T) {
	wall := core.NewRect(10, 0, 2, 20).Box()
	b := NewBody(core.V(9.8, 10), 1, 1, 2)
	b.Velocity = core.V(4, 0)

	w := NewWorld(20, 20, b, 0.01)
	w.Add(3, wall, "Obstacle")

	if contacts := w.Resolve(); len(contacts) != 1 || contacts[0].ID != 3 {
		t.Fatalf("contacts = %+v, want the wall", contacts)
	}
	if b.Box().Max.X > wall.Min.X+1e-9 {
		t.Errorf("body still penetrates the wall: %+v", b.Box())
	}
	if b.Velocity.X != 0 {
		t.Errorf("horizontal velocity should be cancelled, got %v", b.Velocity.X)
	}
}

func TestResolveTouchWithinSlop(t *testing.T) {
	tests := []struct {
		name  string
		pos   core.Vec2
		touch bool
	}{
		{"resting on top", core.V(5, 9), true},
		{"within slop", core.V(5, 8.995), true},
		{"clear gap", core.V(5, 8.5), false},
		{"far away", core.V(15, 2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBody(tt.pos, 1, 1, 2)
			w := NewWorld(20, 20, b, 0.01)
			w.Add(0, core.NewRect(0, 10, 10, 1).Box(), "Friendly")

			got := len(w.Resolve()) == 1
			if got != tt.touch {
				t.Errorf("touching = %v, want %v", got, tt.touch)
			}
			if b.Position != tt.pos {
				t.Errorf("non-overlapping body moved to %+v", b.Position)
			}
		})
	}
}

func TestResolveOrdersByID(t *testing.T) {
	b := NewBody(core.V(5, 9), 1, 1, 2)
	w := NewWorld(20, 20, b, 0.01)
	w.Add(7, core.NewRect(5, 10, 5, 1).Box(), "Obstacle")
	w.Add(2, core.NewRect(0, 10, 5, 1).Box(), "Finish")

	contacts := w.Resolve()
	if len(contacts) != 2 || contacts[0].ID != 2 || contacts[1].ID != 7 {
		t.Fatalf("contacts = %+v, want ids 2 then 7", contacts)
	}
	if w.Len() != 2 {
		t.Errorf("Len() = %d, want 2", w.Len())
	}
}

func TestMoveCollider(t *testing.T) {
	b := NewBody(core.V(5, 5), 1, 1, 1)
	w := NewWorld(20, 20, b, 0.01)
	w.Add(0, core.NewRect(15, 15, 2, 2).Box(), "Obstacle")

	if len(w.Resolve()) != 0 {
		t.Fatal("distant block should not touch")
	}

	w.Move(0, core.V(5, 5.4))
	if contacts := w.Resolve(); len(contacts) != 1 {
		t.Fatalf("moved block should hit the body, got %+v", contacts)
	}

	w.Move(9, core.V(0, 0)) // Unknown ids are ignored
}
