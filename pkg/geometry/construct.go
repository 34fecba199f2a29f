package geometry

import (
	"errors"
	"math"
)

// ErrDegenerateLine is returned when a line has coincident endpoints
var ErrDegenerateLine = errors.New("degenerate line: endpoints coincide")

// minLengthSquared below which a base line is treated as a single point
const minLengthSquared = 1e-18

// SquareCorners returns the two corners completing the square on the edge p1->p2.
// The edge vector is rotated clockwise, so for a given point order the square
// always lies on the same side. The first corner is adjacent to p2, the second
// to p1.
func SquareCorners(p1, p2 Vector2) (Vector2, Vector2) {
	offset := p2.Sub(p1).RotateCW()
	return p2.Add(offset), p1.Add(offset)
}

// ProjectOntoLine returns the orthogonal projection of p onto the infinite line
// through a and b. The result is not clamped to the segment.
func ProjectOntoLine(a, b, p Vector2) (Vector2, error) {
	dir := b.Sub(a)
	lengthSquared := dir.Dot(dir)
	if lengthSquared < minLengthSquared {
		return Vector2{}, ErrDegenerateLine
	}

	s := dir.Dot(p.Sub(a)) / lengthSquared
	result := a.Add(dir.Mul(s))
	if !result.IsFinite() {
		return Vector2{}, ErrDegenerateLine
	}
	return result, nil
}

// PolygonArea returns the unsigned area of a simple polygon (shoelace formula)
func PolygonArea(vertices ...Vector2) float64 {
	if len(vertices) < 3 {
		return 0
	}

	var sum float64
	for i, v := range vertices {
		sum += v.Cross(vertices[(i+1)%len(vertices)])
	}
	return math.Abs(sum) / 2.0
}
