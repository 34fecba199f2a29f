package render

import (
	"github.com/philipparndt/goeuclid/pkg/scene"
	"github.com/philipparndt/goeuclid/pkg/surface"
)

// Highlight toggles the selected state of the entities a token names. Tokens
// naming unknown entities are ignored.
func Highlight(s *scene.Scene, out surface.Surface, tok scene.Token, on bool) {
	switch tok.Kind {
	case scene.TokenPoint:
		highlightPoint(s, out, tok.Target, on)
	case scene.TokenLine:
		highlightLine(s, out, tok.Target, on)
	case scene.TokenAngle:
		highlightAngle(s, out, tok.Target, on)
	case scene.TokenTriangle, scene.TokenPolygon:
		highlightPoly(s, out, tok.Target, on)
	}
}

func highlightPoint(s *scene.Scene, out surface.Surface, label string, on bool) {
	if _, ok := s.Point(label); !ok {
		return
	}
	toggle(out, label, surface.ClassSelectedPoint, on)
	toggle(out, LabelID(label), surface.ClassSelectedText, on)
}

func highlightLine(s *scene.Scene, out surface.Surface, target string, on bool) {
	key := scene.TokenKey(target)
	if _, ok := s.LineByKey(key); !ok {
		return
	}
	toggle(out, key, surface.ClassSelectedLine, on)

	for _, label := range scene.SplitLabels(target) {
		highlightPoint(s, out, label, on)
	}
}

// highlightAngle marks the vertex, both end points and the two arms
func highlightAngle(s *scene.Scene, out surface.Surface, target string, on bool) {
	letters := scene.SplitLabels(target)
	if len(letters) != 3 {
		return
	}

	for _, label := range letters {
		highlightPoint(s, out, label, on)
	}
	highlightLine(s, out, letters[0]+letters[1], on)
	highlightLine(s, out, letters[1]+letters[2], on)
}

func highlightPoly(s *scene.Scene, out surface.Surface, target string, on bool) {
	key := scene.TokenKey(target)
	if !s.HasPolygon(key) {
		return
	}
	toggle(out, key, surface.ClassSelectedPoly, on)
}

func toggle(out surface.Surface, id, class string, on bool) {
	if on {
		out.AddClass(id, class)
	} else {
		out.RemoveClass(id, class)
	}
}
