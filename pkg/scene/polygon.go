package scene

import "github.com/philipparndt/goeuclid/pkg/geometry"

// Square is built on the edge P1-P2 and owns the two corners it generates.
// C1 is adjacent to P2, C2 to P1.
type Square struct {
	Key    string
	P1, P2 *Point
	C1, C2 *Point
	Edges  [3]*Line // P2-C1, C1-C2, C2-P1
}

// Recompute re-derives the generated corners from the current edge
func (q *Square) Recompute() {
	q.C1.Pos, q.C2.Pos = geometry.SquareCorners(q.P1.Pos, q.P2.Pos)
}

// Vertices returns the corners in drawing order
func (q *Square) Vertices() []geometry.Vector2 {
	return []geometry.Vector2{q.P2.Pos, q.C1.Pos, q.C2.Pos, q.P1.Pos}
}

// Area returns the current area of the square
func (q *Square) Area() float64 {
	return geometry.PolygonArea(q.Vertices()...)
}

// Triangle holds three point references and nothing else
type Triangle struct {
	Key     string
	A, B, C *Point
}

// Vertices returns the corners in drawing order
func (t *Triangle) Vertices() []geometry.Vector2 {
	return []geometry.Vector2{t.B.Pos, t.C.Pos, t.A.Pos}
}

// Area returns the current area of the triangle
func (t *Triangle) Area() float64 {
	return geometry.PolygonArea(t.Vertices()...)
}
