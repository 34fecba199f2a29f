// Package surface defines the retained drawing target the diagram renders into.
// Shapes are created once under a stable id and only repositioned afterwards.
package surface

import "github.com/philipparndt/goeuclid/pkg/geometry"

// Kind identifies the primitive a shape is drawn with
type Kind int

const (
	KindPolygon Kind = iota // filled polygon
	KindSegment             // line segment between two points
	KindMarker              // circular point marker
	KindLabel               // text anchored at one point
)

// Layer is the paint order of a shape: lower layers are painted first
type Layer int

const (
	LayerPoly Layer = iota
	LayerLine
	LayerPoint
	LayerText
	layerCount
)

// Layer returns the layer shapes of this kind are painted in
func (k Kind) Layer() Layer {
	switch k {
	case KindPolygon:
		return LayerPoly
	case KindSegment:
		return LayerLine
	case KindMarker:
		return LayerPoint
	default:
		return LayerText
	}
}

// Class names understood by every back end
const (
	ClassPoint          = "point"
	ClassPointDraggable = "point-draggable"
	ClassLine           = "line"
	ClassLineDashed     = "line-dashed"
	ClassPoly           = "poly"
	ClassText           = "text"
	ClassSelectedPoint  = "selected-point"
	ClassSelectedText   = "selected-text"
	ClassSelectedLine   = "selected-line"
	ClassSelectedPoly   = "selected-poly"
)

// Shape describes a primitive in screen coordinates
type Shape struct {
	ID      string
	Kind    Kind
	Points  []geometry.Vector2
	Text    string
	Classes []string
}

// Surface is a retained drawing target addressed by shape id.
// Operations on unknown ids are ignored.
type Surface interface {
	Create(shape Shape)
	Update(id string, points []geometry.Vector2)
	AddClass(id, class string)
	RemoveClass(id, class string)
}
