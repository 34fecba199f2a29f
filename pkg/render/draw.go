// Package render pushes the geometry of a scene onto a drawing surface.
package render

import (
	"github.com/philipparndt/goeuclid/pkg/geometry"
	"github.com/philipparndt/goeuclid/pkg/plane"
	"github.com/philipparndt/goeuclid/pkg/scene"
	"github.com/philipparndt/goeuclid/pkg/surface"
)

// LabelOffset places a point's text label relative to its marker, in pixels
var LabelOffset = geometry.NewVector2(-20, 20)

// LabelID returns the surface id of the text label belonging to a point
func LabelID(label string) string {
	return "text" + label
}

// Draw creates one shape per entity: triangles, then squares, then lines,
// then point markers with their labels.
func Draw(s *scene.Scene, out surface.Surface, m *plane.Mapper) {
	for _, t := range s.Triangles() {
		out.Create(surface.Shape{
			ID:      t.Key,
			Kind:    surface.KindPolygon,
			Points:  toScreen(m, t.Vertices()),
			Classes: []string{surface.ClassPoly},
		})
	}

	for _, q := range s.Squares() {
		out.Create(surface.Shape{
			ID:      q.Key,
			Kind:    surface.KindPolygon,
			Points:  toScreen(m, q.Vertices()),
			Classes: []string{surface.ClassPoly},
		})
	}

	for _, l := range s.Lines() {
		classes := []string{surface.ClassLine}
		if l.Dashed {
			classes = append(classes, surface.ClassLineDashed)
		}
		out.Create(surface.Shape{
			ID:      l.Key,
			Kind:    surface.KindSegment,
			Points:  []geometry.Vector2{m.ToScreen(l.P1.Pos), m.ToScreen(l.P2.Pos)},
			Classes: classes,
		})
	}

	for _, p := range s.Points() {
		classes := []string{surface.ClassPoint}
		if p.Draggable() {
			classes = append(classes, surface.ClassPointDraggable)
		}
		at := m.ToScreen(p.Pos)
		out.Create(surface.Shape{
			ID:      p.Label,
			Kind:    surface.KindMarker,
			Points:  []geometry.Vector2{at},
			Classes: classes,
		})
		out.Create(surface.Shape{
			ID:      LabelID(p.Label),
			Kind:    surface.KindLabel,
			Points:  []geometry.Vector2{at.Add(LabelOffset)},
			Text:    p.Label,
			Classes: []string{surface.ClassText},
		})
	}
}

// Redraw repositions every shape created by Draw from the entities' current
// coordinates, in the same order.
func Redraw(s *scene.Scene, out surface.Surface, m *plane.Mapper) {
	for _, t := range s.Triangles() {
		out.Update(t.Key, toScreen(m, t.Vertices()))
	}

	for _, q := range s.Squares() {
		out.Update(q.Key, toScreen(m, q.Vertices()))
	}

	for _, l := range s.Lines() {
		out.Update(l.Key, []geometry.Vector2{m.ToScreen(l.P1.Pos), m.ToScreen(l.P2.Pos)})
	}

	for _, p := range s.Points() {
		at := m.ToScreen(p.Pos)
		out.Update(p.Label, []geometry.Vector2{at})
		out.Update(LabelID(p.Label), []geometry.Vector2{at.Add(LabelOffset)})
	}
}

func toScreen(m *plane.Mapper, vertices []geometry.Vector2) []geometry.Vector2 {
	out := make([]geometry.Vector2, len(vertices))
	for i, v := range vertices {
		out[i] = m.ToScreen(v)
	}
	return out
}
