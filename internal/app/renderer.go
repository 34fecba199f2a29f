package app

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goeuclid/pkg/geometry"
	"github.com/philipparndt/goeuclid/pkg/surface"
)

// drawDiagram paints the retained shapes in layer order
func (app *App) drawDiagram() {
	width, height := windowViewport{}.Size()
	rl.BeginScissorMode(0, 0, int32(width), int32(height))
	defer rl.EndScissorMode()

	theme := app.UI.theme
	app.Diagram.store.Each(func(e *surface.Element) {
		style := theme.Style(e)
		switch e.Kind {
		case surface.KindPolygon:
			app.drawPolygon(e.Points, style)
		case surface.KindSegment:
			if len(e.Points) == 2 {
				app.drawSegment(e.Points[0], e.Points[1], style)
			}
		case surface.KindMarker:
			if len(e.Points) == 1 {
				app.drawMarker(e.Points[0], style)
			}
		case surface.KindLabel:
			if len(e.Points) == 1 {
				app.drawText(e.Text, e.Points[0], style)
			}
		}
	})
}

// drawPolygon fills a convex polygon as a triangle fan
func (app *App) drawPolygon(points []geometry.Vector2, style surface.Style) {
	if len(points) < 3 {
		return
	}

	fill := toColor(style.Fill)
	v0 := toRl(points[0])
	for i := 1; i < len(points)-1; i++ {
		v1 := toRl(points[i])
		v2 := toRl(points[i+1])
		// raylib culls clockwise triangles in screen space
		if cross(v0, v1, v2) > 0 {
			v1, v2 = v2, v1
		}
		rl.DrawTriangle(v0, v1, v2, fill)
	}

	if style.Width > 0 {
		stroke := toColor(style.Stroke)
		for i := range points {
			rl.DrawLineEx(toRl(points[i]), toRl(points[(i+1)%len(points)]), float32(style.Width), stroke)
		}
	}
}

func (app *App) drawSegment(a, b geometry.Vector2, style surface.Style) {
	stroke := toColor(style.Stroke)
	width := float32(style.Width)
	if !style.Dashed {
		rl.DrawLineEx(toRl(a), toRl(b), width, stroke)
		return
	}

	dash := app.UI.theme.DashLength
	length := a.Distance(b)
	if length == 0 || dash <= 0 {
		return
	}
	dir := b.Sub(a).Mul(1 / length)
	for d := 0.0; d < length; d += dash * 2 {
		end := math.Min(d+dash, length)
		rl.DrawLineEx(toRl(a.Add(dir.Mul(d))), toRl(a.Add(dir.Mul(end))), width, stroke)
	}
}

func (app *App) drawMarker(p geometry.Vector2, style surface.Style) {
	rl.DrawCircleV(toRl(p), float32(style.Radius), toColor(style.Fill))
	if style.Width > 0 {
		rl.DrawCircleLines(int32(p.X), int32(p.Y), float32(style.Radius)+1, toColor(style.Stroke))
	}
}

// drawText centers the text horizontally on its anchor
func (app *App) drawText(text string, p geometry.Vector2, style surface.Style) {
	size := rl.MeasureTextEx(app.UI.font, text, app.UI.fontSize, 1)
	pos := rl.Vector2{
		X: float32(p.X) - size.X/2,
		Y: float32(p.Y) - size.Y/2,
	}
	rl.DrawTextEx(app.UI.font, text, pos, app.UI.fontSize, 1, toColor(style.Fill))
}

func cross(a, b, c rl.Vector2) float32 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func toRl(v geometry.Vector2) rl.Vector2 {
	return rl.Vector2{X: float32(v.X), Y: float32(v.Y)}
}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
