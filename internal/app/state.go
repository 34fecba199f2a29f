package app

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goeuclid/pkg/drag"
	"github.com/philipparndt/goeuclid/pkg/plane"
	"github.com/philipparndt/goeuclid/pkg/render"
	"github.com/philipparndt/goeuclid/pkg/scene"
	"github.com/philipparndt/goeuclid/pkg/surface"
	"github.com/philipparndt/goeuclid/pkg/watcher"
)

// DiagramState holds the construction and everything that draws it
type DiagramState struct {
	scene    *scene.Scene
	elements *scene.Elements
	store    *surface.Store
	mapper   *plane.Mapper
	loop     *render.Loop
	drag     *drag.Controller
}

// InteractionState holds mouse and hover state
type InteractionState struct {
	lastMousePos      rl.Vector2
	hoveredAnnotation int // -1=none
}

// ConfigWatchState holds config file watching and reload state
type ConfigWatchState struct {
	path        string               // Config file path, empty when running on defaults
	fileWatcher *watcher.FileWatcher // Watcher for hot reload
	needsReload atomic.Bool          // Set from the watcher goroutine, consumed by the frame loop
}

// UIState holds UI-related state
type UIState struct {
	font             rl.Font
	fontSize         float32
	theme            surface.Theme
	annotations      []scene.Annotation
	annotationBounds []rl.Rectangle // Hit areas of the proof steps, from the previous frame
}
