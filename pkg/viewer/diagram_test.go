package viewer

import (
	"math"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"

	"github.com/philipparndt/goeuclid/pkg/drag"
	"github.com/philipparndt/goeuclid/pkg/geometry"
	"github.com/philipparndt/goeuclid/pkg/scene"
	"github.com/philipparndt/goeuclid/pkg/surface"
)

func newTestView(t *testing.T) *DiagramView {
	test.NewTempApp(t)

	v, err := NewDiagramView(surface.DefaultTheme())
	if err != nil {
		t.Fatalf("NewDiagramView failed: %v", err)
	}
	v.Resize(fyne.NewSize(800, 600))
	v.frame()
	return v
}

func mouseAt(p geometry.Vector2) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(float32(p.X), float32(p.Y))},
		Button:     desktop.MouseButtonPrimary,
	}
}

func TestDiagramViewFrame(t *testing.T) {
	v := newTestView(t)

	if v.Frames() != 1 {
		t.Errorf("Frames failed: expected 1, got %d", v.Frames())
	}
	if v.store.Len() != 43 {
		t.Errorf("Shape count failed: expected 43, got %d", v.store.Len())
	}

	r := test.TempWidgetRenderer(t, v)
	// background, raster, 17 lines of which 5 dashed, 10 markers, 10 labels
	if len(r.Objects()) < 2+17+10+10 {
		t.Errorf("Objects failed: expected at least %d, got %d", 2+17+10+10, len(r.Objects()))
	}
}

func TestDiagramViewDrag(t *testing.T) {
	v := newTestView(t)
	b := v.Elements().B

	start := v.mapper.ToScreen(b.Pos)
	v.MouseDown(mouseAt(start))
	if v.DragState() != drag.StateDragging {
		t.Fatalf("MouseDown failed: expected %v, got %v", drag.StateDragging, v.DragState())
	}

	target := v.mapper.ToScreen(geometry.NewVector2(2, 0))
	v.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(float32(target.X), float32(target.Y))}})
	if math.Abs(b.Pos.X-2) > 1e-4 || b.Pos.Y != 0 {
		t.Errorf("Dragged failed: expected (2, 0), got %v", b.Pos)
	}

	v.MouseOut()
	if v.DragState() != drag.StateReleased {
		t.Errorf("MouseOut failed: expected %v, got %v", drag.StateReleased, v.DragState())
	}

	// Released points ignore further moves
	v.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(float32(start.X), float32(start.Y))}})
	if math.Abs(b.Pos.X-2) > 1e-4 {
		t.Errorf("Dragged after release failed: expected 2, got %v", b.Pos.X)
	}
}

func TestAnnotationLabelHover(t *testing.T) {
	v := newTestView(t)

	tok := scene.Token{Kind: scene.TokenPolygon, Target: "ΑΒΖΗ"}
	label := NewAnnotationLabel(scene.Annotation{Text: "Square ΑΒΖΗ", Token: tok}, v.Highlight)

	label.MouseIn(nil)
	e, ok := v.store.Element(scene.Key("Α", "Β", "Ζ", "Η"))
	if !ok {
		t.Fatalf("Element lookup failed: square ΑΒΖΗ not drawn")
	}
	if !e.HasClass(surface.ClassSelectedPoly) {
		t.Errorf("MouseIn failed: expected %s class", surface.ClassSelectedPoly)
	}

	label.MouseOut()
	if e.HasClass(surface.ClassSelectedPoly) {
		t.Errorf("MouseOut failed: expected %s class removed", surface.ClassSelectedPoly)
	}
}

func TestDiagramRendererReusesObjects(t *testing.T) {
	v := newTestView(t)
	r := test.TempWidgetRenderer(t, v).(*diagramRenderer)

	before := make(map[fyne.CanvasObject]bool)
	for _, o := range r.Objects() {
		before[o] = true
	}

	v.frame()
	after := r.Objects()
	if len(after) != len(before) {
		t.Fatalf("Object count failed: expected %d, got %d", len(before), len(after))
	}
	for _, o := range after {
		if !before[o] {
			t.Fatalf("Object reuse failed: new object %T created on an unchanged frame", o)
		}
	}

	// Dragging moves the existing marker instead of replacing it
	b := v.Elements().B
	marker := r.cache[scene.LabelB].circle
	if marker == nil {
		t.Fatalf("Marker lookup failed: no circle for %s", scene.LabelB)
	}
	oldPos := marker.Position()

	v.MouseDown(mouseAt(v.mapper.ToScreen(b.Pos)))
	target := v.mapper.ToScreen(geometry.NewVector2(2, 0))
	v.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(float32(target.X), float32(target.Y))}})
	v.DragEnd()
	v.frame()

	if r.cache[scene.LabelB].circle != marker {
		t.Errorf("Marker reuse failed: expected the same circle after a drag")
	}
	if marker.Position() == oldPos {
		t.Errorf("Marker move failed: expected a new position, got %v", marker.Position())
	}
}
