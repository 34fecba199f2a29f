package scene

import (
	"fmt"
	"math"
)

// Labels of the proof of Euclid I.47
const (
	LabelA  = "Α"
	LabelB  = "Β"
	LabelC  = "Γ"
	LabelZ  = "Ζ"
	LabelH  = "Η"
	LabelE  = "Ε"
	LabelD  = "Δ"
	LabelTh = "Θ"
	LabelK  = "Κ"
	LabelL  = "Λ"
)

// Elements names the entities of the Pythagoras construction
type Elements struct {
	A, B, C *Point // right angle at A; B moves horizontally, C vertically

	ABZH *Square // square on ΑΒ
	BCED *Square // square on ΒΓ (hypotenuse)
	CATK *Square // square on ΓΑ

	AB, BC, CA *Line
	L          *Point // foot of the perpendicular from Α onto ΕΔ
	AL         *Line

	ABD, ZBC, DBL *Triangle
}

// BuildPythagoras constructs the figure of Euclid I.47 in an empty scene. It
// runs once per scene; a second call fails on duplicate labels.
func BuildPythagoras(s *Scene) (*Elements, error) {
	b := &builder{scene: s}
	e := &Elements{}

	e.A = b.point(LabelA, 0, 0, AxisNone)
	e.B = b.point(LabelB, 1, 0, AxisHorizontal)
	e.C = b.point(LabelC, 0, 1.5, AxisVertical)

	e.ABZH = b.square(e.A, e.B, LabelZ, LabelH)
	e.BCED = b.square(e.B, e.C, LabelE, LabelD)
	e.CATK = b.square(e.C, e.A, LabelTh, LabelK)
	if b.err != nil {
		return nil, b.err
	}

	e.AB = s.AddLine(e.A, e.B, false)
	e.BC = s.AddLine(e.B, e.C, false)
	e.CA = s.AddLine(e.C, e.A, false)

	// Λ lies on ΕΔ, the side of the hypotenuse square opposite ΒΓ
	e.L = b.projection(e.BCED.Edges[1], e.A, LabelL)
	if b.err != nil {
		return nil, b.err
	}

	e.AL = s.AddLine(e.A, e.L, true)
	s.AddLine(e.A, e.BCED.C2, true)
	s.AddLine(e.A, e.BCED.C1, true)
	s.AddLine(e.B, e.CATK.C2, true)
	s.AddLine(e.C, e.ABZH.C1, true)

	e.ABD = s.AddTriangle(e.A, e.B, e.BCED.C2)
	e.ZBC = s.AddTriangle(e.ABZH.C1, e.B, e.C)
	e.DBL = s.AddTriangle(e.BCED.C2, e.B, e.L)

	return e, nil
}

// Residual returns |ΑΒ² + ΑΓ² - ΒΓ²| measured on the square areas
func (e *Elements) Residual() float64 {
	return math.Abs(e.ABZH.Area() + e.CATK.Area() - e.BCED.Area())
}

// builder keeps the first construction error so the sequence reads linearly
type builder struct {
	scene *Scene
	err   error
}

func (b *builder) point(label string, u, v float64, axis Axis) *Point {
	if b.err != nil {
		return nil
	}
	p, err := b.scene.AddPoint(label, u, v, axis)
	if err != nil {
		b.err = fmt.Errorf("building point %s: %w", label, err)
	}
	return p
}

func (b *builder) square(p1, p2 *Point, label1, label2 string) *Square {
	if b.err != nil {
		return nil
	}
	q, err := b.scene.AddSquare(p1, p2, label1, label2)
	if err != nil {
		b.err = fmt.Errorf("building square: %w", err)
	}
	return q
}

func (b *builder) projection(base *Line, source *Point, label string) *Point {
	if b.err != nil {
		return nil
	}
	p, err := b.scene.AddProjection(base, source, label)
	if err != nil {
		b.err = fmt.Errorf("building projection %s: %w", label, err)
	}
	return p
}

// Annotation is a hoverable piece of proof text
type Annotation struct {
	Text  string
	Token Token
}

// Annotations returns the proof steps of Euclid I.47 in reading order
func Annotations() []Annotation {
	return []Annotation{
		{Text: "Right angle ΒΑΓ", Token: Token{Kind: TokenAngle, Target: "ΒΑΓ"}},
		{Text: "Square ΑΒΖΗ on ΑΒ", Token: Token{Kind: TokenPolygon, Target: "ΑΒΖΗ"}},
		{Text: "Square ΒΓΕΔ on ΒΓ", Token: Token{Kind: TokenPolygon, Target: "ΒΓΕΔ"}},
		{Text: "Square ΓΑΘΚ on ΓΑ", Token: Token{Kind: TokenPolygon, Target: "ΓΑΘΚ"}},
		{Text: "ΓΑ and ΑΗ form one line", Token: Token{Kind: TokenAngle, Target: "ΓΑΗ"}},
		{Text: "ΑΛ drawn parallel to ΒΔ", Token: Token{Kind: TokenLine, Target: "ΑΛ"}},
		{Text: "Join ΑΔ", Token: Token{Kind: TokenLine, Target: "ΑΔ"}},
		{Text: "Join ΖΓ", Token: Token{Kind: TokenLine, Target: "ΖΓ"}},
		{Text: "Angle ΔΒΓ equals angle ΖΒΑ", Token: Token{Kind: TokenAngle, Target: "ΔΒΓ"}},
		{Text: "Triangle ΑΒΔ equals triangle ΖΒΓ", Token: Token{Kind: TokenTriangle, Target: "ΑΒΔ"}},
		{Text: "Triangle ΖΒΓ is half of square ΑΒΖΗ", Token: Token{Kind: TokenTriangle, Target: "ΖΒΓ"}},
		{Text: "Triangle ΔΒΛ is half of the rectangle on ΒΔ", Token: Token{Kind: TokenTriangle, Target: "ΔΒΛ"}},
		{Text: "Point Λ", Token: Token{Kind: TokenPoint, Target: "Λ"}},
		{Text: "Join ΒΚ", Token: Token{Kind: TokenLine, Target: "ΒΚ"}},
		{Text: "Join ΑΕ", Token: Token{Kind: TokenLine, Target: "ΑΕ"}},
	}
}
