// Package drag turns pointer input into constrained moves of free points.
package drag

import (
	"math"

	"github.com/philipparndt/goeuclid/pkg/geometry"
	"github.com/philipparndt/goeuclid/pkg/plane"
	"github.com/philipparndt/goeuclid/pkg/scene"
)

// DefaultHandleRadius is the pick distance around a draggable marker in pixels
const DefaultHandleRadius = 14.0

// State of the drag interaction
type State int

const (
	StateReleased State = iota
	StateDragging
)

func (s State) String() string {
	if s == StateDragging {
		return "dragging"
	}
	return "released"
}

// Controller tracks which point the pointer is moving. Moves only update the
// point; the next frame picks the new coordinate up.
type Controller struct {
	scene        *scene.Scene
	mapper       *plane.Mapper
	handleRadius float64
}

// NewController creates a controller for the scene's draggable points
func NewController(s *scene.Scene, m *plane.Mapper) *Controller {
	return &Controller{scene: s, mapper: m, handleRadius: DefaultHandleRadius}
}

// SetHandleRadius changes the pick distance around draggable markers
func (c *Controller) SetHandleRadius(radius float64) {
	if radius > 0 {
		c.handleRadius = radius
	}
}

// State returns Dragging while any point carries the dragged flag
func (c *Controller) State() State {
	if c.scene.DraggedPoint() != nil {
		return StateDragging
	}
	return StateReleased
}

// Active returns the point being dragged, or nil
func (c *Controller) Active() *scene.Point {
	return c.scene.DraggedPoint()
}

// Begin starts dragging the point with the given label. It fails while another
// drag is in progress or when the point is not draggable.
func (c *Controller) Begin(label string) bool {
	if c.State() == StateDragging {
		return false
	}
	p, ok := c.scene.Point(label)
	if !ok {
		return false
	}
	return p.StartDrag()
}

// PointerDown starts a drag on the draggable point whose handle is closest to
// the pointer, if any lies within the handle radius.
func (c *Controller) PointerDown(screen geometry.Vector2) (*scene.Point, bool) {
	if c.State() == StateDragging {
		return nil, false
	}

	var nearest *scene.Point
	minDist := math.MaxFloat64
	for _, p := range c.scene.Points() {
		if !p.Draggable() {
			continue
		}
		dist := c.mapper.ToScreen(p.Pos).Distance(screen)
		if dist <= c.handleRadius && dist < minDist {
			nearest = p
			minDist = dist
		}
	}

	if nearest == nil || !nearest.StartDrag() {
		return nil, false
	}
	return nearest, true
}

// PointerMove applies the pointer position to the dragged point. Only the
// first dragged point in creation order moves. Returns whether it moved.
func (c *Controller) PointerMove(screen geometry.Vector2) bool {
	p := c.scene.DraggedPoint()
	if p == nil {
		return false
	}
	return p.SetScreenDrag(c.mapper, screen)
}

// PointerUp ends the drag. It is safe to call when nothing is dragged, so
// leave and cancel events anywhere on the surface can use it.
func (c *Controller) PointerUp() {
	for _, p := range c.scene.Points() {
		p.EndDrag()
	}
}

// Place moves a free point to a plane position through a complete
// down-move-up cycle, applying the same axis constraint as pointer input.
func (c *Controller) Place(label string, target geometry.Vector2) bool {
	if !c.Begin(label) {
		return false
	}
	defer c.PointerUp()

	p := c.scene.DraggedPoint()
	return p.MoveTo(target)
}
