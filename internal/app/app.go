package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/philipparndt/goeuclid/internal/config"
	"github.com/philipparndt/goeuclid/pkg/drag"
	"github.com/philipparndt/goeuclid/pkg/plane"
	"github.com/philipparndt/goeuclid/pkg/render"
	"github.com/philipparndt/goeuclid/pkg/scene"
	"github.com/philipparndt/goeuclid/pkg/surface"
	"github.com/philipparndt/goeuclid/pkg/watcher"
)

// panelWidth is the width of the proof panel on the right of the window
const panelWidth = float32(360)

type App struct {
	Config      config.Config
	Diagram     DiagramState
	Interaction InteractionState
	ConfigWatch ConfigWatchState
	UI          UIState
}

// windowViewport is the part of the window left of the panel. It reads the
// window size on every call so resizes apply on the next frame.
type windowViewport struct{}

func (windowViewport) Size() (float64, float64) {
	width := float64(rl.GetScreenWidth()) - float64(panelWidth)
	if width < 0 {
		width = 0
	}
	return width, float64(rl.GetScreenHeight())
}

// Run opens the window and runs the frame loop until it is closed
func Run(cfg config.Config, configPath string) error {
	theme, err := cfg.Theme.Resolve()
	if err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}

	s := scene.New()
	elements, err := scene.BuildPythagoras(s)
	if err != nil {
		return fmt.Errorf("failed to build construction: %w", err)
	}
	// The box is fitted once; dragging later does not re-center the view
	s.FitBounds()

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), "GoEuclid - Elements I.47")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Window.FPS))

	mapper := plane.NewMapper(windowViewport{}, s.Bounds())
	store := surface.NewStore()
	loop := render.NewLoop(s, mapper, store)
	loop.OnWarning = func(err error) {
		fmt.Printf("Warning: %v\n", err)
	}
	controller := drag.NewController(s, mapper)
	controller.SetHandleRadius(cfg.HandleRadius)

	app := &App{
		Config: cfg,
		Diagram: DiagramState{
			scene:    s,
			elements: elements,
			store:    store,
			mapper:   mapper,
			loop:     loop,
			drag:     controller,
		},
		Interaction: InteractionState{hoveredAnnotation: -1},
		UI: UIState{
			fontSize:    float32(theme.FontSize),
			theme:       theme,
			annotations: scene.Annotations(),
		},
	}
	app.ConfigWatch.path = configPath

	if configPath != "" {
		if err := app.setupConfigWatcher(); err != nil {
			fmt.Printf("Warning: Failed to set up config watching: %v\n", err)
			fmt.Println("Config reload will not be available")
		} else {
			defer app.ConfigWatch.fileWatcher.Close()
		}
	}

	// Load at a large size so labels stay crisp when scaled down on high DPI displays
	app.UI.font = rl.LoadFontFromMemory(".ttf", goregular.TTF, 96, fontCharset())
	defer rl.UnloadFont(app.UI.font)
	rl.SetTextureFilter(app.UI.font.Texture, rl.FilterBilinear)

	loop.Start()

	// Main loop
	for !rl.WindowShouldClose() {
		if app.ConfigWatch.needsReload.Swap(false) {
			app.reloadConfig()
		}

		// Update: input first, the frame then picks up any moved point
		app.handleInput()
		// Failures are reported through OnWarning; the frame keeps the last valid positions
		_ = loop.Tick()

		// Draw
		rl.BeginDrawing()
		rl.ClearBackground(toColor(app.UI.theme.Background))

		app.drawDiagram()
		app.drawUI()

		rl.EndDrawing()
	}

	return nil
}

func (app *App) setupConfigWatcher() error {
	fw, err := watcher.NewFileWatcher(300 * time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	fw.OnError(func(err error) {
		fmt.Printf("Watcher error: %v\n", err)
	})

	callback := func(changedFile string) {
		fmt.Printf("Config changed: %s\n", changedFile)
		app.ConfigWatch.needsReload.Store(true)
	}

	if err := fw.Watch(app.ConfigWatch.path, callback); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch config: %w", err)
	}

	fw.Start()
	app.ConfigWatch.fileWatcher = fw
	fmt.Printf("Watching config for changes: %s\n", app.ConfigWatch.path)
	return nil
}

// reloadConfig applies theme, frame rate and handle size from the config file.
// A broken file keeps the current settings.
func (app *App) reloadConfig() {
	cfg, err := config.Load(app.ConfigWatch.path)
	if err != nil {
		fmt.Printf("Warning: Keeping current settings: %v\n", err)
		return
	}

	theme, err := cfg.Theme.Resolve()
	if err != nil {
		fmt.Printf("Warning: Keeping current theme: %v\n", err)
		return
	}

	app.UI.theme = theme
	app.UI.fontSize = float32(theme.FontSize)
	app.Diagram.drag.SetHandleRadius(cfg.HandleRadius)
	if cfg.Window.FPS != app.Config.Window.FPS {
		rl.SetTargetFPS(int32(cfg.Window.FPS))
	}
	app.Config = cfg
	fmt.Println("Config reloaded")
}

// fontCharset returns the glyphs the UI needs: ASCII, Greek and a few symbols
func fontCharset() []rune {
	runes := make([]rune, 0, 200)
	for r := rune(32); r < 127; r++ {
		runes = append(runes, r)
	}
	for r := rune(0x391); r <= 0x3C9; r++ {
		runes = append(runes, r)
	}
	return append(runes, []rune("²³·×−≈√∠△□")...)
}
