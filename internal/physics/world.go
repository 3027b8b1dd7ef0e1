package physics

import (
	"math"
	"sort"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/tui-lander/internal/core"
)

// cellSize is the broadphase grid cell in world units.
const cellSize = 4

// restingDrag bleeds horizontal drift while the body rests on a surface.
const restingDrag = 0.8

// Contact is one collider the body is touching after a Resolve.
type Contact struct {
	ID  int    // Collider id given to Add
	Tag string // First resolv tag of the collider
}

// World is the body's collision space. Colliders are resolv objects tagged
// with their collider tag; the body is an exact hull for pushing out of
// overlaps plus a slightly larger sensor for touch detection.
type World struct {
	space   *resolv.Space
	body    *Body
	reach   *resolv.Object // Broadphase query around the body
	hull    *resolv.ConvexPolygon
	sensor  *resolv.ConvexPolygon
	slop    float64
	objects map[int]*resolv.Object
}

// NewWorld creates a width×height space around body. Boxes closer than slop
// count as touching.
func NewWorld(width, height int, body *Body, slop float64) *World {
	w := &World{
		space:   resolv.NewSpace(width+2*cellSize, height+2*cellSize, cellSize, cellSize),
		body:    body,
		hull:    resolv.NewRectangle(0, 0, body.Width, body.Height),
		sensor:  resolv.NewRectangle(0, 0, body.Width+2*slop, body.Height+2*slop),
		slop:    slop,
		objects: make(map[int]*resolv.Object),
	}
	// The query object reaches one unit past the hull so that cells holding
	// colliders flush against the body are included.
	w.reach = resolv.NewObject(0, 0, body.Width+2, body.Height+2)
	w.space.Add(w.reach)
	w.sync()
	return w
}

// Add places a collider with the given id, box and tag.
func (w *World) Add(id int, box core.Box, tag string) {
	obj := resolv.NewObject(box.Min.X, box.Min.Y, box.Width(), box.Height(), tag)
	obj.Data = id
	w.space.Add(obj)
	obj.SetShape(resolv.NewRectangle(0, 0, box.Width(), box.Height()))
	obj.Update()
	w.objects[id] = obj
}

// Move puts collider id's top-left corner at pos.
func (w *World) Move(id int, pos core.Vec2) {
	obj, ok := w.objects[id]
	if !ok {
		return
	}
	obj.Position.X = pos.X
	obj.Position.Y = pos.Y
	obj.Update()
}

// Len returns the number of colliders.
func (w *World) Len() int {
	return len(w.objects)
}

// Resolve pushes the body out of every collider it overlaps, cancels the
// velocity that drove it in and returns the colliders it touches, ordered
// by id.
func (w *World) Resolve() []Contact {
	w.sync()
	candidates := w.candidates()

	for _, obj := range candidates {
		set := w.hull.Intersection(0, 0, obj.Shape)
		if set == nil {
			continue
		}
		w.push(set.MTV.X, set.MTV.Y, obj)
		w.sync()
	}

	var contacts []Contact
	for _, obj := range candidates {
		if w.sensor.Intersection(0, 0, obj.Shape) == nil {
			continue
		}
		c := Contact{ID: obj.Data.(int)}
		if tags := obj.Tags(); len(tags) > 0 {
			c.Tag = tags[0]
		}
		contacts = append(contacts, c)
	}
	return contacts
}

// candidates returns the colliders sharing broadphase cells with the body.
func (w *World) candidates() []*resolv.Object {
	collision := w.reach.Check(0, 0)
	if collision == nil {
		return nil
	}
	objs := make([]*resolv.Object, 0, len(collision.Objects))
	for _, obj := range collision.Objects {
		if _, ok := obj.Data.(int); ok && obj.Shape != nil {
			objs = append(objs, obj)
		}
	}
	sort.Slice(objs, func(i, j int) bool {
		return objs[i].Data.(int) < objs[j].Data.(int)
	})
	return objs
}

// push moves the body by the translation (dx, dy) out of obj.
func (w *World) push(dx, dy float64, obj *resolv.Object) {
	// Orient the push away from the collider.
	away := w.body.Position.Sub(core.V(obj.Position.X+obj.Size.X/2, obj.Position.Y+obj.Size.Y/2))
	if dx*away.X+dy*away.Y < 0 {
		dx, dy = -dx, -dy
	}

	b := w.body
	b.Position = b.Position.Add(core.V(dx, dy))

	if math.Abs(dy) >= math.Abs(dx) {
		switch {
		case dy < 0 && b.Velocity.Y > 0:
			b.Velocity.Y = 0
			b.Velocity.X *= restingDrag
		case dy > 0 && b.Velocity.Y < 0:
			b.Velocity.Y = 0
		}
		return
	}
	if (dx < 0 && b.Velocity.X > 0) || (dx > 0 && b.Velocity.X < 0) {
		b.Velocity.X = 0
	}
}

// sync moves the body's shapes and query object to its current position.
func (w *World) sync() {
	box := w.body.Box()
	w.hull.SetPosition(box.Min.X, box.Min.Y)
	w.sensor.SetPosition(box.Min.X-w.slop, box.Min.Y-w.slop)
	w.reach.Position.X = box.Min.X - 1
	w.reach.Position.Y = box.Min.Y - 1
	w.reach.Update()
}
