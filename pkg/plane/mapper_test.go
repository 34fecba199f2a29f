package plane

import (
	"testing"

	"github.com/philipparndt/goeuclid/pkg/geometry"
)

// resizableViewport lets tests change the size after the mapper was built
type resizableViewport struct {
	width, height float64
}

func (v *resizableViewport) Size() (float64, float64) {
	return v.width, v.height
}

func TestToScreenCenter(t *testing.T) {
	bounds := geometry.NewUnitBoundingBox()
	m := NewMapper(FixedViewport{Width: 800, Height: 600}, &bounds)

	result := m.ToScreen(geometry.NewVector2(0, 0))
	expected := geometry.NewVector2(400, 300)

	if result != expected {
		t.Errorf("ToScreen failed: expected %v, got %v", expected, result)
	}
}

func TestToScreenScaleAndInversion(t *testing.T) {
	bounds := geometry.NewUnitBoundingBox()
	m := NewMapper(FixedViewport{Width: 800, Height: 600}, &bounds)

	// scaleUnit = min(800, 600) * 0.2 = 120
	result := m.ToScreen(geometry.NewVector2(1, 1))
	expected := geometry.NewVector2(520, 180)

	if result.Distance(expected) > 1e-10 {
		t.Errorf("ToScreen failed: expected %v, got %v", expected, result)
	}
	if m.ScaleUnit() != 120 {
		t.Errorf("ScaleUnit failed: expected 120, got %v", m.ScaleUnit())
	}
}

func TestToScreenUsesBoundingBoxCenter(t *testing.T) {
	bounds := geometry.NewUnitBoundingBox()
	bounds.Extend(geometry.NewVector2(3, 3))
	m := NewMapper(FixedViewport{Width: 500, Height: 500}, &bounds)

	result := m.ToScreen(bounds.Center())
	expected := geometry.NewVector2(250, 250)

	if result.Distance(expected) > 1e-10 {
		t.Errorf("ToScreen failed: expected %v, got %v", expected, result)
	}
}

func TestInverseMapping(t *testing.T) {
	viewports := []FixedViewport{
		{Width: 800, Height: 600},
		{Width: 320, Height: 1024},
		{Width: 1, Height: 1},
		{Width: 1920.5, Height: 1080.25},
	}
	boxes := []geometry.BoundingBox{
		geometry.NewUnitBoundingBox(),
		{Min: geometry.NewVector2(-2.5, -1), Max: geometry.NewVector2(1.5, 2.5)},
		{Min: geometry.NewVector2(10, 10), Max: geometry.NewVector2(20, 40)},
	}
	points := []geometry.Vector2{
		geometry.NewVector2(0, 0),
		geometry.NewVector2(1, 0),
		geometry.NewVector2(0, 1.5),
		geometry.NewVector2(-123.456, 78.9),
	}

	for _, vp := range viewports {
		for i := range boxes {
			m := NewMapper(vp, &boxes[i])
			for _, p := range points {
				back := m.ToPlane(m.ToScreen(p))
				if back.Distance(p) > 1e-9 {
					t.Errorf("Inverse mapping failed for %v in %v/%v: got %v", p, vp, boxes[i], back)
				}
			}
		}
	}
}

func TestMapperReadsLiveViewport(t *testing.T) {
	bounds := geometry.NewUnitBoundingBox()
	vp := &resizableViewport{width: 400, height: 400}
	m := NewMapper(vp, &bounds)

	before := m.ToScreen(geometry.NewVector2(0, 0))
	vp.width, vp.height = 1000, 600
	after := m.ToScreen(geometry.NewVector2(0, 0))

	if before != geometry.NewVector2(200, 200) {
		t.Errorf("Before resize: expected (200, 200), got %v", before)
	}
	if after != geometry.NewVector2(500, 300) {
		t.Errorf("After resize: expected (500, 300), got %v", after)
	}
}

func TestToPlaneCollapsedViewport(t *testing.T) {
	bounds := geometry.NewUnitBoundingBox()
	m := NewMapper(FixedViewport{}, &bounds)

	result := m.ToPlane(geometry.NewVector2(10, 10))
	if !result.IsFinite() {
		t.Errorf("ToPlane on empty viewport should stay finite, got %v", result)
	}
}
