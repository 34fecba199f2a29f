package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/philipparndt/goeuclid/pkg/geometry"
)

func TestKeyIsCommutative(t *testing.T) {
	if Key("Α", "Β") != Key("Β", "Α") {
		t.Errorf("Key failed: %q != %q", Key("Α", "Β"), Key("Β", "Α"))
	}
	if Key("Γ", "Α", "Β") != "ΑΒΓ" {
		t.Errorf("Key failed: expected ΑΒΓ, got %q", Key("Γ", "Α", "Β"))
	}
	if TokenKey("ΔΓΕΒ") != "ΒΓΔΕ" {
		t.Errorf("TokenKey failed: expected ΒΓΔΕ, got %q", TokenKey("ΔΓΕΒ"))
	}
}

func TestAddLineCommutativeIdentity(t *testing.T) {
	s := New()
	a, _ := s.AddPoint("Α", 0, 0, AxisNone)
	b, _ := s.AddPoint("Β", 1, 0, AxisNone)

	l1 := s.AddLine(a, b, false)
	l2 := s.AddLine(b, a, true)

	if l1.Key != l2.Key {
		t.Errorf("Line identity failed: %q != %q", l1.Key, l2.Key)
	}
	if l1 != l2 {
		t.Error("Line(Β, Α) should return the existing line Line(Α, Β)")
	}
	if len(s.Lines()) != 1 {
		t.Errorf("Expected 1 line, got %d", len(s.Lines()))
	}
}

func TestAddPointDuplicateLabel(t *testing.T) {
	s := New()
	if _, err := s.AddPoint("Α", 0, 0, AxisNone); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	_, err := s.AddPoint("Α", 1, 1, AxisNone)
	if !errors.Is(err, ErrDuplicateLabel) {
		t.Errorf("Expected ErrDuplicateLabel, got %v", err)
	}
}

func TestPointKinds(t *testing.T) {
	s := New()
	static, _ := s.AddPoint("Α", 0, 0, AxisNone)
	free, _ := s.AddPoint("Β", 1, 0, AxisHorizontal)

	if static.Kind != KindStatic || static.Draggable() {
		t.Errorf("Expected static non-draggable point, got %v", static.Kind)
	}
	if free.Kind != KindFree || !free.Draggable() {
		t.Errorf("Expected free draggable point, got %v", free.Kind)
	}
	if static.StartDrag() {
		t.Error("StartDrag should refuse a point without axis")
	}
}

func TestDragThresholdHorizontal(t *testing.T) {
	s := New()
	p, _ := s.AddPoint("Β", 1, 0, AxisHorizontal)
	p.StartDrag()

	if p.MoveTo(geometry.NewVector2(0.10, 3)) {
		t.Error("Dragging to u=0.10 should be rejected")
	}
	if p.Pos != geometry.NewVector2(1, 0) {
		t.Errorf("Rejected drag must not move the point, got %v", p.Pos)
	}

	if !p.MoveTo(geometry.NewVector2(0.5, 3)) {
		t.Error("Dragging to u=0.5 should succeed")
	}
	if p.Pos != geometry.NewVector2(0.5, 0) {
		t.Errorf("Horizontal drag should only change u, got %v", p.Pos)
	}
}

func TestDragThresholdVertical(t *testing.T) {
	s := New()
	p, _ := s.AddPoint("Γ", 0, 1.5, AxisVertical)
	p.StartDrag()

	if p.MoveTo(geometry.NewVector2(5, -1)) {
		t.Error("Dragging to v=-1 should be rejected")
	}
	if !p.MoveTo(geometry.NewVector2(5, 2.25)) {
		t.Error("Dragging to v=2.25 should succeed")
	}
	if p.Pos != geometry.NewVector2(0, 2.25) {
		t.Errorf("Vertical drag should only change v, got %v", p.Pos)
	}
}

func TestMoveToRequiresDragFlag(t *testing.T) {
	s := New()
	p, _ := s.AddPoint("Β", 1, 0, AxisHorizontal)

	if p.MoveTo(geometry.NewVector2(2, 0)) {
		t.Error("MoveTo without StartDrag should be ignored")
	}

	p.StartDrag()
	p.EndDrag()
	if p.MoveTo(geometry.NewVector2(2, 0)) {
		t.Error("MoveTo after EndDrag should be ignored")
	}
}

func TestSquareFollowsEdge(t *testing.T) {
	s := New()
	a, _ := s.AddPoint("Α", 0, 0, AxisNone)
	b, _ := s.AddPoint("Β", 1, 0, AxisHorizontal)
	q, err := s.AddSquare(a, b, "Ζ", "Η")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if q.Key != Key("Α", "Β", "Ζ", "Η") {
		t.Errorf("Square key failed: got %q", q.Key)
	}
	if len(s.Lines()) != 3 {
		t.Errorf("Square should create 3 edges, got %d", len(s.Lines()))
	}
	if _, ok := s.Line("Α", "Β"); ok {
		t.Error("Square must not create the defining edge")
	}

	b.StartDrag()
	b.MoveTo(geometry.NewVector2(2, 0))
	if err := s.Recompute(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if q.C1.Pos.Distance(geometry.NewVector2(2, -2)) > 1e-10 {
		t.Errorf("Corner Ζ failed: expected (2, -2), got %v", q.C1.Pos)
	}
	if q.C2.Pos.Distance(geometry.NewVector2(0, -2)) > 1e-10 {
		t.Errorf("Corner Η failed: expected (0, -2), got %v", q.C2.Pos)
	}
	if math.Abs(q.Area()-4) > 1e-10 {
		t.Errorf("Square area failed: expected 4, got %v", q.Area())
	}
}

func TestAddSquareDegenerate(t *testing.T) {
	s := New()
	a, _ := s.AddPoint("Α", 1, 1, AxisNone)
	b, _ := s.AddPoint("Β", 1, 1, AxisNone)

	if _, err := s.AddSquare(a, b, "Ζ", "Η"); !errors.Is(err, geometry.ErrDegenerateLine) {
		t.Errorf("Expected ErrDegenerateLine, got %v", err)
	}
}

func TestProjectionCorrectness(t *testing.T) {
	s := New()
	p1, _ := s.AddPoint("Α", 0, 0, AxisNone)
	p2, _ := s.AddPoint("Β", 1, 0, AxisNone)
	src, _ := s.AddPoint("Γ", 0.5, 3, AxisNone)
	base := s.AddLine(p1, p2, false)

	foot, err := s.AddProjection(base, src, "Λ")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if foot.Pos.Distance(geometry.NewVector2(0.5, 0)) > 1e-10 {
		t.Errorf("Projection failed: expected (0.5, 0), got %v", foot.Pos)
	}
	if foot.Kind != KindProjected || foot.Draggable() {
		t.Errorf("Projected point must not be draggable, kind %v", foot.Kind)
	}
	if foot.Base() != base || foot.Source() != src {
		t.Error("Projected point lost its references")
	}
}

func TestProjectionDegenerateKeepsLastValue(t *testing.T) {
	s := New()
	p1, _ := s.AddPoint("Α", 0, 0, AxisNone)
	p2, _ := s.AddPoint("Β", 1, 0, AxisHorizontal)
	src, _ := s.AddPoint("Γ", 0.5, 3, AxisNone)
	foot, _ := s.AddProjection(s.AddLine(p1, p2, false), src, "Λ")

	// Collapse the base line
	p2.Pos = p1.Pos
	err := s.Recompute()

	if !errors.Is(err, geometry.ErrDegenerateLine) {
		t.Errorf("Expected ErrDegenerateLine, got %v", err)
	}
	if foot.Pos.Distance(geometry.NewVector2(0.5, 0)) > 1e-10 {
		t.Errorf("Projected point should keep its last valid value, got %v", foot.Pos)
	}
	if !foot.Pos.IsFinite() {
		t.Errorf("Projected point must stay finite, got %v", foot.Pos)
	}
}

func TestFitBoundsOnlyGrows(t *testing.T) {
	s := New()
	s.AddPoint("Α", 0.5, 0.5, AxisNone)
	s.AddPoint("Β", 3, -2, AxisNone)

	s.FitBounds()

	bounds := s.Bounds()
	if bounds.Min != geometry.NewVector2(-1, -2) || bounds.Max != geometry.NewVector2(3, 1) {
		t.Errorf("FitBounds failed: got %v", *bounds)
	}
}

func TestDraggedPointFirstWins(t *testing.T) {
	s := New()
	b, _ := s.AddPoint("Β", 1, 0, AxisHorizontal)
	c, _ := s.AddPoint("Γ", 0, 1.5, AxisVertical)

	if s.DraggedPoint() != nil {
		t.Error("No point should be dragged initially")
	}

	c.StartDrag()
	b.StartDrag()
	if s.DraggedPoint() != b {
		t.Errorf("Expected Β to win as first in creation order, got %v", s.DraggedPoint().Label)
	}
}

func TestParseToken(t *testing.T) {
	tok, err := ParseToken("poly:ΑΒΖΗ")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if tok.Kind != TokenPolygon || tok.Target != "ΑΒΖΗ" {
		t.Errorf("ParseToken failed: got %+v", tok)
	}

	for _, bad := range []string{"ΑΒ", "circle:Α", "line:"} {
		if _, err := ParseToken(bad); err == nil {
			t.Errorf("ParseToken(%q) should fail", bad)
		}
	}
}
