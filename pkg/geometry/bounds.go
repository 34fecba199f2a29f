package geometry

import "math"

// BoundingBox represents an axis-aligned rectangle in the plane
type BoundingBox struct {
	Min Vector2
	Max Vector2
}

// NewBoundingBox creates an empty bounding box that any Extend call replaces
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Vector2{X: math.MaxFloat64, Y: math.MaxFloat64},
		Max: Vector2{X: -math.MaxFloat64, Y: -math.MaxFloat64},
	}
}

// NewUnitBoundingBox creates the box [-1, 1] x [-1, 1]
func NewUnitBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Vector2{X: -1, Y: -1},
		Max: Vector2{X: 1, Y: 1},
	}
}

// Extend expands the bounding box to include a point
func (b *BoundingBox) Extend(point Vector2) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// Size returns the dimensions of the bounding box
func (b BoundingBox) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the bounding box
func (b BoundingBox) Center() Vector2 {
	return Vector2{
		X: (b.Min.X + b.Max.X) / 2.0,
		Y: (b.Min.Y + b.Max.Y) / 2.0,
	}
}

// Contains reports whether the point lies inside the box (borders included)
func (b BoundingBox) Contains(point Vector2) bool {
	return point.X >= b.Min.X && point.X <= b.Max.X &&
		point.Y >= b.Min.Y && point.Y <= b.Max.Y
}
