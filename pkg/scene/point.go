package scene

import (
	"fmt"

	"github.com/philipparndt/goeuclid/pkg/geometry"
	"github.com/philipparndt/goeuclid/pkg/plane"
)

// DragThreshold is the smallest plane coordinate a constrained point may be dragged to
const DragThreshold = 0.15

// Kind tells how a point obtains its coordinates
type Kind int

const (
	KindStatic    Kind = iota // fixed, never moves
	KindFree                  // moved by drag input along its axis
	KindDerived               // square corner, written by its square
	KindProjected             // foot of a perpendicular, recomputed from base line and source
)

func (k Kind) String() string {
	switch k {
	case KindStatic:
		return "static"
	case KindFree:
		return "free"
	case KindDerived:
		return "derived"
	case KindProjected:
		return "projected"
	default:
		return "unknown"
	}
}

// Axis restricts interactive movement of a free point
type Axis int

const (
	AxisNone Axis = iota
	AxisHorizontal
	AxisVertical
)

// Point is a labelled position in the plane
type Point struct {
	Label string
	Pos   geometry.Vector2
	Kind  Kind
	Axis  Axis

	dragged bool

	// Only set for KindProjected
	base   *Line
	source *Point
}

// Draggable reports whether the point accepts drag input
func (p *Point) Draggable() bool {
	return p.Kind == KindFree && p.Axis != AxisNone
}

// Dragged reports whether the point is currently being dragged
func (p *Point) Dragged() bool {
	return p.dragged
}

// StartDrag marks the point as being dragged. Points without an axis refuse.
func (p *Point) StartDrag() bool {
	if !p.Draggable() {
		return false
	}
	p.dragged = true
	return true
}

// EndDrag clears the dragged flag
func (p *Point) EndDrag() {
	p.dragged = false
}

// Base returns the line a projected point is dropped onto
func (p *Point) Base() *Line {
	return p.base
}

// Source returns the point a projected point is dropped from
func (p *Point) Source() *Point {
	return p.source
}

// MoveTo applies a plane-space drag target under the point's axis constraint.
// Only the coordinate of the drag axis changes, and only while it stays above
// DragThreshold. Returns whether the point moved.
func (p *Point) MoveTo(target geometry.Vector2) bool {
	if !p.dragged || !p.Draggable() {
		return false
	}

	switch p.Axis {
	case AxisHorizontal:
		if target.X > DragThreshold {
			p.Pos.X = target.X
			return true
		}
	case AxisVertical:
		if target.Y > DragThreshold {
			p.Pos.Y = target.Y
			return true
		}
	}
	return false
}

// SetScreenDrag converts a pointer position to plane coordinates and applies it
func (p *Point) SetScreenDrag(m *plane.Mapper, screen geometry.Vector2) bool {
	if !p.dragged {
		return false
	}
	return p.MoveTo(m.ToPlane(screen))
}

// Recompute refreshes a projected point from its base line and source.
// On a degenerate base the last valid position is kept and an error returned.
func (p *Point) Recompute() error {
	if p.Kind != KindProjected {
		return nil
	}

	pos, err := geometry.ProjectOntoLine(p.base.P1.Pos, p.base.P2.Pos, p.source.Pos)
	if err != nil {
		return fmt.Errorf("projecting %s onto %s for %s: %w", p.source.Label, p.base.Key, p.Label, err)
	}
	p.Pos = pos
	return nil
}
