// Package scene holds the entities of a geometric construction and keeps the
// derived ones up to date.
package scene

import (
	"errors"
	"fmt"

	"github.com/philipparndt/goeuclid/pkg/geometry"
)

// ErrDuplicateLabel is returned when a point label is already registered
var ErrDuplicateLabel = errors.New("duplicate point label")

// Scene owns every entity of a construction in creation order, plus lookup
// tables keyed by canonical identity. Entities are appended during
// construction and never removed.
type Scene struct {
	points    []*Point
	lines     []*Line
	squares   []*Square
	triangles []*Triangle

	pointsByLabel map[string]*Point
	linesByKey    map[string]*Line
	polysByKey    map[string]any

	bounds geometry.BoundingBox
}

// New creates an empty scene whose bounding box is the unit box
func New() *Scene {
	return &Scene{
		pointsByLabel: make(map[string]*Point),
		linesByKey:    make(map[string]*Line),
		polysByKey:    make(map[string]any),
		bounds:        geometry.NewUnitBoundingBox(),
	}
}

// AddPoint registers a point. A point with an axis is free, otherwise static.
func (s *Scene) AddPoint(label string, u, v float64, axis Axis) (*Point, error) {
	kind := KindStatic
	if axis != AxisNone {
		kind = KindFree
	}
	return s.register(&Point{Label: label, Pos: geometry.NewVector2(u, v), Kind: kind, Axis: axis})
}

func (s *Scene) register(p *Point) (*Point, error) {
	if p.Label == "" {
		return nil, fmt.Errorf("point label must not be empty")
	}
	if _, exists := s.pointsByLabel[p.Label]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateLabel, p.Label)
	}

	s.points = append(s.points, p)
	s.pointsByLabel[p.Label] = p
	return p, nil
}

// AddLine registers the segment p1-p2. Lines have commutative identity: if a
// line between the same points exists it is returned unchanged.
func (s *Scene) AddLine(p1, p2 *Point, dashed bool) *Line {
	key := Key(p1.Label, p2.Label)
	if existing, ok := s.linesByKey[key]; ok {
		return existing
	}

	l := &Line{Key: key, P1: p1, P2: p2, Dashed: dashed}
	s.lines = append(s.lines, l)
	s.linesByKey[key] = l
	return l
}

// AddSquare builds the square on the edge p1-p2, creating the corners label1
// (next to p2) and label2 (next to p1) and the three edges P2-C1, C1-C2, C2-P1.
// The edge p1-p2 itself is not created.
func (s *Scene) AddSquare(p1, p2 *Point, label1, label2 string) (*Square, error) {
	if p1.Pos == p2.Pos {
		return nil, fmt.Errorf("square on %s%s: %w", p1.Label, p2.Label, geometry.ErrDegenerateLine)
	}

	pos1, pos2 := geometry.SquareCorners(p1.Pos, p2.Pos)
	c1, err := s.register(&Point{Label: label1, Pos: pos1, Kind: KindDerived})
	if err != nil {
		return nil, fmt.Errorf("square on %s%s: %w", p1.Label, p2.Label, err)
	}
	c2, err := s.register(&Point{Label: label2, Pos: pos2, Kind: KindDerived})
	if err != nil {
		return nil, fmt.Errorf("square on %s%s: %w", p1.Label, p2.Label, err)
	}

	q := &Square{
		Key: Key(p1.Label, p2.Label, label1, label2),
		P1:  p1,
		P2:  p2,
		C1:  c1,
		C2:  c2,
	}
	q.Edges[0] = s.AddLine(p2, c1, false)
	q.Edges[1] = s.AddLine(c1, c2, false)
	q.Edges[2] = s.AddLine(c2, p1, false)

	s.squares = append(s.squares, q)
	s.polysByKey[q.Key] = q
	return q, nil
}

// AddTriangle registers the triangle a, b, c. An existing triangle on the same
// points is returned unchanged.
func (s *Scene) AddTriangle(a, b, c *Point) *Triangle {
	key := Key(a.Label, b.Label, c.Label)
	if existing, ok := s.polysByKey[key].(*Triangle); ok {
		return existing
	}

	t := &Triangle{Key: key, A: a, B: b, C: c}
	s.triangles = append(s.triangles, t)
	s.polysByKey[key] = t
	return t
}

// AddProjection registers the foot of the perpendicular from source onto the
// infinite line through base.
func (s *Scene) AddProjection(base *Line, source *Point, label string) (*Point, error) {
	p := &Point{Label: label, Kind: KindProjected, base: base, source: source}
	if err := p.Recompute(); err != nil {
		return nil, err
	}
	return s.register(p)
}

// Recompute brings every derived entity up to date in the fixed order
// triangles, squares, lines, points. Square corners are therefore current
// before anything that references them is read. Failures leave the affected
// point at its last valid position; all of them are returned joined.
func (s *Scene) Recompute() error {
	// Triangles and lines only reference points; nothing to derive.
	for _, q := range s.squares {
		q.Recompute()
	}

	var errs []error
	for _, p := range s.points {
		if err := p.Recompute(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// FitBounds grows the bounding box to cover every current point. The box is
// never shrunk.
func (s *Scene) FitBounds() {
	for _, p := range s.points {
		s.bounds.Extend(p.Pos)
	}
}

// Bounds returns the bounding box used to center the coordinate mapping
func (s *Scene) Bounds() *geometry.BoundingBox {
	return &s.bounds
}

// Points returns all points in creation order
func (s *Scene) Points() []*Point { return s.points }

// Lines returns all lines in creation order
func (s *Scene) Lines() []*Line { return s.lines }

// Squares returns all squares in creation order
func (s *Scene) Squares() []*Square { return s.squares }

// Triangles returns all triangles in creation order
func (s *Scene) Triangles() []*Triangle { return s.triangles }

// Point looks up a point by label
func (s *Scene) Point(label string) (*Point, bool) {
	p, ok := s.pointsByLabel[label]
	return p, ok
}

// Line looks up the line between two labels, in either order
func (s *Scene) Line(label1, label2 string) (*Line, bool) {
	l, ok := s.linesByKey[Key(label1, label2)]
	return l, ok
}

// LineByKey looks up a line by its canonical key
func (s *Scene) LineByKey(key string) (*Line, bool) {
	l, ok := s.linesByKey[key]
	return l, ok
}

// Square looks up a square by its canonical key
func (s *Scene) Square(key string) (*Square, bool) {
	q, ok := s.polysByKey[key].(*Square)
	return q, ok
}

// Triangle looks up a triangle by its canonical key
func (s *Scene) Triangle(key string) (*Triangle, bool) {
	t, ok := s.polysByKey[key].(*Triangle)
	return t, ok
}

// HasPolygon reports whether a square or triangle has the canonical key
func (s *Scene) HasPolygon(key string) bool {
	_, ok := s.polysByKey[key]
	return ok
}

// DraggedPoint returns the first point in creation order that is being dragged
func (s *Scene) DraggedPoint() *Point {
	for _, p := range s.points {
		if p.dragged {
			return p
		}
	}
	return nil
}
