package render

import (
	"github.com/philipparndt/goeuclid/pkg/plane"
	"github.com/philipparndt/goeuclid/pkg/scene"
	"github.com/philipparndt/goeuclid/pkg/surface"
)

// State of the frame loop
type State int

const (
	StateIdle State = iota
	StateFrameInProgress
)

// Loop recomputes the scene and repositions its shapes once per frame. The
// front end calls Tick at its display cadence; the loop has no stop condition
// of its own.
type Loop struct {
	scene  *scene.Scene
	mapper *plane.Mapper
	out    surface.Surface

	state       State
	started     bool
	frames      uint64
	lastWarning string

	// OnWarning is called when recomputation fails, once per distinct failure.
	// The frame is still drawn with the last valid coordinates.
	OnWarning func(err error)
}

// NewLoop creates a loop drawing s onto out through m
func NewLoop(s *scene.Scene, m *plane.Mapper, out surface.Surface) *Loop {
	return &Loop{scene: s, mapper: m, out: out}
}

// Start creates every shape on the surface. Later calls do nothing.
func (l *Loop) Start() {
	if l.started {
		return
	}
	l.started = true
	Draw(l.scene, l.out, l.mapper)
}

// Tick runs one frame: recompute triangles, squares, lines and points, then
// push the new screen coordinates to the surface.
func (l *Loop) Tick() error {
	l.Start()

	l.state = StateFrameInProgress
	defer func() { l.state = StateIdle }()

	err := l.scene.Recompute()
	l.report(err)

	Redraw(l.scene, l.out, l.mapper)
	l.frames++
	return err
}

func (l *Loop) report(err error) {
	if err == nil {
		l.lastWarning = ""
		return
	}
	if msg := err.Error(); msg != l.lastWarning {
		l.lastWarning = msg
		if l.OnWarning != nil {
			l.OnWarning(err)
		}
	}
}

// State returns whether a frame is being computed
func (l *Loop) State() State {
	return l.state
}

// Frames returns the number of completed frames
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Mapper returns the coordinate mapper used for drawing
func (l *Loop) Mapper() *plane.Mapper {
	return l.mapper
}
