package viewer

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/goeuclid/pkg/scene"
)

// AnnotationLabel is a proof step that highlights its figure parts while hovered
type AnnotationLabel struct {
	widget.Label
	annotation scene.Annotation
	onHover    func(tok scene.Token, on bool)
}

// NewAnnotationLabel creates a label for a proof step
func NewAnnotationLabel(a scene.Annotation, onHover func(tok scene.Token, on bool)) *AnnotationLabel {
	l := &AnnotationLabel{annotation: a, onHover: onHover}
	l.Text = a.Text
	l.Wrapping = fyne.TextWrapWord
	l.ExtendBaseWidget(l)
	return l
}

// Annotation returns the proof step shown by the label
func (l *AnnotationLabel) Annotation() scene.Annotation {
	return l.annotation
}

func (l *AnnotationLabel) MouseIn(*desktop.MouseEvent) {
	l.setHovered(true)
}

func (l *AnnotationLabel) MouseMoved(*desktop.MouseEvent) {}

func (l *AnnotationLabel) MouseOut() {
	l.setHovered(false)
}

func (l *AnnotationLabel) setHovered(on bool) {
	l.TextStyle.Bold = on
	l.Refresh()
	if l.onHover != nil {
		l.onHover(l.annotation.Token, on)
	}
}
