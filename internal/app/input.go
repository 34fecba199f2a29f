package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goeuclid/pkg/geometry"
	"github.com/philipparndt/goeuclid/pkg/render"
)

// handleInput processes user input
func (app *App) handleInput() {
	mouse := rl.GetMousePosition()
	moved := mouse.X != app.Interaction.lastMousePos.X || mouse.Y != app.Interaction.lastMousePos.Y
	app.Interaction.lastMousePos = mouse

	app.updateAnnotationHover(mouse)

	screen := geometry.NewVector2(float64(mouse.X), float64(mouse.Y))
	inDiagram := app.inDiagram(mouse)

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && inDiagram {
		app.Diagram.drag.PointerDown(screen)
	}

	// Leaving the diagram area releases the point like a button release
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) || !inDiagram || !rl.IsCursorOnScreen() {
		app.Diagram.drag.PointerUp()
		return
	}

	if rl.IsMouseButtonDown(rl.MouseLeftButton) && moved {
		app.Diagram.drag.PointerMove(screen)
	}
}

func (app *App) inDiagram(pos rl.Vector2) bool {
	width, height := windowViewport{}.Size()
	return pos.X >= 0 && pos.Y >= 0 && float64(pos.X) < width && float64(pos.Y) < height
}

// updateAnnotationHover toggles the highlight of the proof step under the mouse
func (app *App) updateAnnotationHover(mouse rl.Vector2) {
	hovered := -1
	for i, rect := range app.UI.annotationBounds {
		if rl.CheckCollisionPointRec(mouse, rect) {
			hovered = i
			break
		}
	}

	if hovered == app.Interaction.hoveredAnnotation {
		return
	}

	if prev := app.Interaction.hoveredAnnotation; prev >= 0 {
		render.Highlight(app.Diagram.scene, app.Diagram.store, app.UI.annotations[prev].Token, false)
	}
	if hovered >= 0 {
		render.Highlight(app.Diagram.scene, app.Diagram.store, app.UI.annotations[hovered].Token, true)
	}
	app.Interaction.hoveredAnnotation = hovered
}
