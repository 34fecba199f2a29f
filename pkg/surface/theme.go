package surface

import "image/color"

// Theme holds the colours and sizes shared by every back end
type Theme struct {
	Background    color.RGBA
	Poly          color.RGBA
	Line          color.RGBA
	Point         color.RGBA
	DraggablePt   color.RGBA
	Text          color.RGBA
	Selected      color.RGBA
	SelectedPoly  color.RGBA
	LineWidth     float64
	PointRadius   float64
	FontSize      float64
	DashLength    float64
	SelectedWidth float64
}

// DefaultTheme returns the built-in dark theme
func DefaultTheme() Theme {
	return Theme{
		Background:    color.RGBA{15, 18, 25, 255},
		Poly:          color.RGBA{70, 110, 170, 90},
		Line:          color.RGBA{220, 220, 220, 255},
		Point:         color.RGBA{230, 230, 230, 255},
		DraggablePt:   color.RGBA{255, 140, 0, 255},
		Text:          color.RGBA{240, 240, 240, 255},
		Selected:      color.RGBA{255, 220, 0, 255},
		SelectedPoly:  color.RGBA{255, 220, 0, 110},
		LineWidth:     2,
		PointRadius:   5,
		FontSize:      18,
		DashLength:    8,
		SelectedWidth: 4,
	}
}

// Style is the resolved appearance of one element
type Style struct {
	Fill   color.RGBA
	Stroke color.RGBA
	Width  float64
	Radius float64
	Dashed bool
}

// Style resolves the appearance of an element from its kind and classes
func (t Theme) Style(e *Element) Style {
	switch e.Kind {
	case KindPolygon:
		if e.HasClass(ClassSelectedPoly) {
			return Style{Fill: t.SelectedPoly, Stroke: t.Selected, Width: t.LineWidth}
		}
		return Style{Fill: t.Poly}

	case KindSegment:
		s := Style{Stroke: t.Line, Width: t.LineWidth, Dashed: e.HasClass(ClassLineDashed)}
		if e.HasClass(ClassSelectedLine) {
			s.Stroke = t.Selected
			s.Width = t.SelectedWidth
		}
		return s

	case KindMarker:
		s := Style{Fill: t.Point, Radius: t.PointRadius}
		if e.HasClass(ClassPointDraggable) {
			s.Fill = t.DraggablePt
			s.Radius = t.PointRadius * 1.6
		}
		if e.HasClass(ClassSelectedPoint) {
			s.Fill = t.Selected
			s.Radius = t.PointRadius * 1.6
		}
		return s

	default:
		if e.HasClass(ClassSelectedText) {
			return Style{Fill: t.Selected}
		}
		return Style{Fill: t.Text}
	}
}
