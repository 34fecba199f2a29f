package scene

import "github.com/philipparndt/goeuclid/pkg/geometry"

// Line is a segment between two points. It references its endpoints, so it
// always reflects their current coordinates.
type Line struct {
	Key    string
	P1, P2 *Point
	Dashed bool
}

// Endpoints returns the current coordinates of both endpoints
func (l *Line) Endpoints() (geometry.Vector2, geometry.Vector2) {
	return l.P1.Pos, l.P2.Pos
}

// Length returns the current length of the segment
func (l *Line) Length() float64 {
	return l.P1.Pos.Distance(l.P2.Pos)
}

// Has reports whether p is one of the endpoints
func (l *Line) Has(p *Point) bool {
	return l.P1 == p || l.P2 == p
}
