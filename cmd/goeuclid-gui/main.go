package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/goeuclid/internal/config"
	"github.com/philipparndt/goeuclid/pkg/scene"
	"github.com/philipparndt/goeuclid/pkg/viewer"
	"github.com/philipparndt/goeuclid/version"
)

type App struct {
	window    fyne.Window
	diagram   *viewer.DiagramView
	areaLabel *widget.Label
	dragLabel *widget.Label
}

func main() {
	configPath := ""
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	theme, err := cfg.Theme.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a := app.New()
	w := a.NewWindow("GoEuclid - Elements I.47")

	diagram, err := viewer.NewDiagramView(theme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	diagram.SetHandleRadius(cfg.HandleRadius)

	appInstance := &App{
		window:    w,
		diagram:   diagram,
		areaLabel: widget.NewLabel(""),
		dragLabel: widget.NewLabel(""),
	}
	appInstance.setupMainUI()

	diagram.SetOnFrame(appInstance.updateInfo)
	diagram.Start(cfg.Window.FPS)
	w.SetOnClosed(diagram.Stop)

	w.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	w.ShowAndRun()
}

func (a *App) setupMainUI() {
	title := widget.NewLabel("Elements I.47")
	title.TextStyle = fyne.TextStyle{Bold: true}

	steps := container.NewVBox()
	for _, annotation := range scene.Annotations() {
		steps.Add(viewer.NewAnnotationLabel(annotation, a.diagram.Highlight))
	}

	a.areaLabel.TextStyle = fyne.TextStyle{Monospace: true}

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag Β along ΑΒ\n" +
			"• Drag Γ along ΓΑ\n" +
			"• Hover a step to highlight it",
	)
	instructions.Wrapping = fyne.TextWrapWord

	infoPanel := container.NewVBox(
		title,
		widget.NewLabel("goeuclid "+version.GetVersion()),
		widget.NewSeparator(),
		steps,
		widget.NewSeparator(),
		a.areaLabel,
		a.dragLabel,
		widget.NewSeparator(),
		instructions,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(320, 0))

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		a.diagram,  // center
	)

	a.window.SetContent(content)
	a.updateInfo()
}

func (a *App) updateInfo() {
	e := a.diagram.Elements()
	a.areaLabel.SetText(fmt.Sprintf(
		"□ ΑΒ  %8.3f\n□ ΓΑ  %8.3f\n□ ΒΓ  %8.3f\nResidual %.2e",
		e.ABZH.Area(), e.CATK.Area(), e.BCED.Area(), e.Residual(),
	))
	a.dragLabel.SetText(fmt.Sprintf("Drag: %s   Frames: %d", a.diagram.DragState(), a.diagram.Frames()))
}
