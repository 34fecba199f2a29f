package scene

import (
	"math"
	"testing"

	"github.com/philipparndt/goeuclid/pkg/geometry"
)

func buildEuclid(t *testing.T) (*Scene, *Elements) {
	t.Helper()
	s := New()
	e, err := BuildPythagoras(s)
	if err != nil {
		t.Fatalf("BuildPythagoras failed: %v", err)
	}
	return s, e
}

func TestBuildPythagorasTopology(t *testing.T) {
	s, e := buildEuclid(t)

	if len(s.Points()) != 10 {
		t.Errorf("Expected 10 points, got %d", len(s.Points()))
	}
	if len(s.Squares()) != 3 {
		t.Errorf("Expected 3 squares, got %d", len(s.Squares()))
	}
	// 9 square edges + 3 triangle sides + 5 dashed lines
	if len(s.Lines()) != 17 {
		t.Errorf("Expected 17 lines, got %d", len(s.Lines()))
	}
	if len(s.Triangles()) != 3 {
		t.Errorf("Expected 3 triangles, got %d", len(s.Triangles()))
	}

	for _, key := range []string{"ΑΛ", "ΑΔ", "ΑΕ", "ΒΚ", "ΓΖ"} {
		l, ok := s.LineByKey(TokenKey(key))
		if !ok {
			t.Errorf("Dashed line %s missing", key)
			continue
		}
		if !l.Dashed {
			t.Errorf("Line %s should be dashed", key)
		}
	}

	for _, key := range []string{"ΑΒΔ", "ΖΒΓ", "ΔΒΛ"} {
		if _, ok := s.Triangle(TokenKey(key)); !ok {
			t.Errorf("Triangle %s missing", key)
		}
	}

	if e.B.Axis != AxisHorizontal || e.C.Axis != AxisVertical || e.A.Draggable() {
		t.Error("Seed axes are wrong")
	}
}

func TestBuildPythagorasInitialCoordinates(t *testing.T) {
	_, e := buildEuclid(t)

	expected := map[*Point]geometry.Vector2{
		e.ABZH.C1: geometry.NewVector2(1, -1),     // Ζ
		e.ABZH.C2: geometry.NewVector2(0, -1),     // Η
		e.BCED.C1: geometry.NewVector2(1.5, 2.5),  // Ε
		e.BCED.C2: geometry.NewVector2(2.5, 1),    // Δ
		e.CATK.C1: geometry.NewVector2(-1.5, 0),   // Θ
		e.CATK.C2: geometry.NewVector2(-1.5, 1.5), // Κ
	}
	for p, want := range expected {
		if p.Pos.Distance(want) > 1e-10 {
			t.Errorf("Point %s failed: expected %v, got %v", p.Label, want, p.Pos)
		}
	}
}

func TestAltitudeFootIsPerpendicular(t *testing.T) {
	_, e := buildEuclid(t)

	ed := e.BCED.C2.Pos.Sub(e.BCED.C1.Pos)
	al := e.L.Pos.Sub(e.A.Pos)
	if math.Abs(ed.Dot(al)) > 1e-10 {
		t.Errorf("ΑΛ should be perpendicular to ΕΔ, dot = %v", ed.Dot(al))
	}
}

func TestPythagorasResidual(t *testing.T) {
	s, e := buildEuclid(t)

	if e.Residual() > 1e-10 {
		t.Errorf("Initial residual failed: got %v", e.Residual())
	}

	e.B.StartDrag()
	e.B.MoveTo(geometry.NewVector2(2.7, 0))
	e.B.EndDrag()
	e.C.StartDrag()
	e.C.MoveTo(geometry.NewVector2(0, 0.4))
	e.C.EndDrag()
	if err := s.Recompute(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if e.Residual() > 1e-9 {
		t.Errorf("Residual after drag failed: got %v", e.Residual())
	}
}

func TestFrameConsistency(t *testing.T) {
	s, e := buildEuclid(t)

	before := make(map[string]geometry.Vector2)
	for _, p := range s.Points() {
		before[p.Label] = p.Pos
	}

	e.B.StartDrag()
	if !e.B.MoveTo(geometry.NewVector2(2, 0)) {
		t.Fatal("Drag of Β rejected")
	}
	if err := s.Recompute(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Everything built on Β moves, everything else stays
	moved := map[string]bool{LabelB: true, LabelZ: true, LabelH: true, LabelE: true, LabelD: true, LabelL: true}
	for _, p := range s.Points() {
		changed := p.Pos.Distance(before[p.Label]) > 1e-12
		if moved[p.Label] && !changed {
			t.Errorf("Point %s should have moved", p.Label)
		}
		if !moved[p.Label] && changed {
			t.Errorf("Point %s should not have moved", p.Label)
		}
	}

	if e.ABZH.C1.Pos.Distance(geometry.NewVector2(2, -2)) > 1e-10 {
		t.Errorf("Ζ failed: expected (2, -2), got %v", e.ABZH.C1.Pos)
	}

	ed := e.BCED.C2.Pos.Sub(e.BCED.C1.Pos)
	if math.Abs(ed.Dot(e.L.Pos.Sub(e.A.Pos))) > 1e-10 {
		t.Error("Λ no longer the foot of the perpendicular after the drag")
	}
	if math.Abs(ed.Cross(e.L.Pos.Sub(e.BCED.C1.Pos))) > 1e-10 {
		t.Error("Λ no longer on ΕΔ after the drag")
	}
}

func TestBuildPythagorasTwice(t *testing.T) {
	s, _ := buildEuclid(t)
	if _, err := BuildPythagoras(s); err == nil {
		t.Error("Building twice in the same scene should fail")
	}
}

func TestAnnotationsResolve(t *testing.T) {
	s, _ := buildEuclid(t)

	for _, a := range Annotations() {
		key := TokenKey(a.Token.Target)
		switch a.Token.Kind {
		case TokenPoint:
			if _, ok := s.Point(a.Token.Target); !ok {
				t.Errorf("Annotation %q names unknown point", a.Text)
			}
		case TokenLine:
			if _, ok := s.LineByKey(key); !ok {
				t.Errorf("Annotation %q names unknown line", a.Text)
			}
		case TokenTriangle, TokenPolygon:
			if !s.HasPolygon(key) {
				t.Errorf("Annotation %q names unknown polygon", a.Text)
			}
		case TokenAngle:
			letters := SplitLabels(a.Token.Target)
			if _, ok := s.Line(letters[0], letters[1]); !ok {
				t.Errorf("Annotation %q names unknown arm %s%s", a.Text, letters[0], letters[1])
			}
			if _, ok := s.Line(letters[1], letters[2]); !ok {
				t.Errorf("Annotation %q names unknown arm %s%s", a.Text, letters[1], letters[2])
			}
		}
	}
}
