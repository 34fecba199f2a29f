package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Label is a boxed line of text in the proof panel
type Label struct {
	Text       string
	Pos        rl.Vector2 // Top left corner of the text
	BaseColor  rl.Color
	HoverColor rl.Color
	IsHovered  bool
}

// Draw renders the label and returns its bounding rectangle
func (l *Label) Draw(font rl.Font, fontSize float32, padding float32) rl.Rectangle {
	color := l.BaseColor
	borderWidth := float32(1)
	if l.IsHovered {
		color = l.HoverColor
		borderWidth = 2
	}

	textSize := rl.MeasureTextEx(font, l.Text, fontSize, 1)

	rect := rl.Rectangle{
		X:      l.Pos.X - padding,
		Y:      l.Pos.Y - padding,
		Width:  textSize.X + 2*padding,
		Height: textSize.Y + 2*padding,
	}

	rl.DrawRectangleRec(rect, rl.NewColor(20, 20, 20, 220))
	rl.DrawRectangleLinesEx(rect, borderWidth, color)
	rl.DrawTextEx(font, l.Text, l.Pos, fontSize, 1, color)

	return rect
}
