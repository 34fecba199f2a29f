package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goeuclid/version"
)

// drawUI draws the proof panel on the right side of the window
func (app *App) drawUI() {
	screenWidth := float32(rl.GetScreenWidth())
	screenHeight := float32(rl.GetScreenHeight())
	x := screenWidth - panelWidth

	rl.DrawRectangleRec(rl.Rectangle{X: x, Y: 0, Width: panelWidth, Height: screenHeight}, rl.NewColor(28, 32, 42, 255))
	rl.DrawLineEx(rl.Vector2{X: x, Y: 0}, rl.Vector2{X: x, Y: screenHeight}, 1, rl.NewColor(60, 66, 80, 255))

	font := app.UI.font
	textColor := toColor(app.UI.theme.Text)
	dim := rl.NewColor(150, 150, 160, 255)
	x += 16
	y := float32(16)

	rl.DrawTextEx(font, "Elements I.47", rl.Vector2{X: x, Y: y}, 26, 1, textColor)
	y += 30
	rl.DrawTextEx(font, "goeuclid "+version.Version, rl.Vector2{X: x, Y: y}, 14, 1, dim)
	y += 30

	// Proof steps, hover to highlight
	fontSize := float32(16)
	bounds := make([]rl.Rectangle, len(app.UI.annotations))
	for i, a := range app.UI.annotations {
		label := Label{
			Text:       a.Text,
			Pos:        rl.Vector2{X: x + 4, Y: y},
			BaseColor:  textColor,
			HoverColor: toColor(app.UI.theme.Selected),
			IsHovered:  i == app.Interaction.hoveredAnnotation,
		}
		bounds[i] = label.Draw(font, fontSize, 4)
		y += bounds[i].Height + 6
	}
	app.UI.annotationBounds = bounds

	y += 12
	e := app.Diagram.elements
	info := []string{
		fmt.Sprintf("□ ΑΒ   %.3f", e.ABZH.Area()),
		fmt.Sprintf("□ ΓΑ   %.3f", e.CATK.Area()),
		fmt.Sprintf("□ ΒΓ   %.3f", e.BCED.Area()),
		fmt.Sprintf("Residual  %.2e", e.Residual()),
	}
	for _, line := range info {
		rl.DrawTextEx(font, line, rl.Vector2{X: x, Y: y}, fontSize, 1, textColor)
		y += 22
	}

	y += 12
	status := fmt.Sprintf("Drag: %s", app.Diagram.drag.State())
	if p := app.Diagram.drag.Active(); p != nil {
		status += " " + p.Label
	}
	rl.DrawTextEx(font, status, rl.Vector2{X: x, Y: y}, 14, 1, dim)
	y += 20
	rl.DrawTextEx(font, fmt.Sprintf("Frames: %d  FPS: %d", app.Diagram.loop.Frames(), rl.GetFPS()), rl.Vector2{X: x, Y: y}, 14, 1, dim)

	// Instructions at the bottom
	help := []string{
		"Drag Β along ΑΒ, Γ along ΓΑ",
		"Hover a step to highlight it",
		"ESC to quit",
	}
	hy := screenHeight - float32(len(help))*18 - 12
	for _, h := range help {
		rl.DrawTextEx(font, h, rl.Vector2{X: x, Y: hy}, 14, 1, dim)
		hy += 18
	}
}
