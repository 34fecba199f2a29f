// Package plane maps abstract plane coordinates to viewport pixels and back.
package plane

import (
	"math"

	"github.com/philipparndt/goeuclid/pkg/geometry"
)

// ScaleFactor is the share of the smaller viewport dimension covered by one plane unit
const ScaleFactor = 0.2

// Viewport reports the current size of the drawing area in pixels
type Viewport interface {
	Size() (width, height float64)
}

// FixedViewport is a viewport with a constant size, used for headless rendering
type FixedViewport struct {
	Width  float64
	Height float64
}

// Size returns the fixed dimensions
func (v FixedViewport) Size() (float64, float64) {
	return v.Width, v.Height
}

// Mapper converts between plane coordinates (u, v) and screen coordinates (x, y).
// The screen y axis grows downward, so v is inverted.
type Mapper struct {
	viewport Viewport
	bounds   *geometry.BoundingBox
}

// NewMapper creates a mapper centered on bounds. The viewport is queried on
// every conversion so resizes take effect immediately.
func NewMapper(viewport Viewport, bounds *geometry.BoundingBox) *Mapper {
	return &Mapper{viewport: viewport, bounds: bounds}
}

// ScaleUnit returns the number of pixels per plane unit
func (m *Mapper) ScaleUnit() float64 {
	width, height := m.viewport.Size()
	return math.Min(width, height) * ScaleFactor
}

// ToScreen converts plane coordinates to screen coordinates
func (m *Mapper) ToScreen(p geometry.Vector2) geometry.Vector2 {
	width, height := m.viewport.Size()
	scale := math.Min(width, height) * ScaleFactor
	center := m.bounds.Center()

	return geometry.Vector2{
		X: width/2 + (p.X-center.X)*scale,
		Y: height/2 - (p.Y-center.Y)*scale,
	}
}

// ToPlane converts screen coordinates to plane coordinates. A collapsed
// viewport maps every pixel to the bounding box center.
func (m *Mapper) ToPlane(s geometry.Vector2) geometry.Vector2 {
	width, height := m.viewport.Size()
	scale := math.Min(width, height) * ScaleFactor
	center := m.bounds.Center()

	if scale <= 0 {
		return center
	}

	return geometry.Vector2{
		X: (s.X-width/2)/scale + center.X,
		Y: (height/2-s.Y)/scale + center.Y,
	}
}
