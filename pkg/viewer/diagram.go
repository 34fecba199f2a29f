// Package viewer provides a fyne widget that shows the interactive figure.
package viewer

import (
	"fmt"
	"image"
	"math"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/goeuclid/pkg/drag"
	"github.com/philipparndt/goeuclid/pkg/geometry"
	"github.com/philipparndt/goeuclid/pkg/plane"
	"github.com/philipparndt/goeuclid/pkg/render"
	"github.com/philipparndt/goeuclid/pkg/scene"
	"github.com/philipparndt/goeuclid/pkg/surface"
)

// DiagramView shows the construction and lets the user drag its free points
type DiagramView struct {
	widget.BaseWidget
	scene    *scene.Scene
	elements *scene.Elements
	store    *surface.Store
	mapper   *plane.Mapper
	loop     *render.Loop
	drag     *drag.Controller
	theme    surface.Theme
	ticker   *time.Ticker
	done     chan struct{}
	onFrame  func()
}

// widgetViewport reports the current widget size to the mapper
type widgetViewport struct {
	view *DiagramView
}

func (v widgetViewport) Size() (float64, float64) {
	size := v.view.Size()
	return float64(size.Width), float64(size.Height)
}

// NewDiagramView builds the construction and wraps it in a widget
func NewDiagramView(theme surface.Theme) (*DiagramView, error) {
	s := scene.New()
	elements, err := scene.BuildPythagoras(s)
	if err != nil {
		return nil, fmt.Errorf("failed to build construction: %w", err)
	}
	s.FitBounds()

	v := &DiagramView{
		scene:    s,
		elements: elements,
		store:    surface.NewStore(),
		theme:    theme,
	}
	v.mapper = plane.NewMapper(widgetViewport{view: v}, s.Bounds())
	v.loop = render.NewLoop(s, v.mapper, v.store)
	v.loop.OnWarning = func(err error) {
		fmt.Printf("Warning: %v\n", err)
	}
	v.drag = drag.NewController(s, v.mapper)
	v.ExtendBaseWidget(v)
	return v, nil
}

// Elements returns the named parts of the construction
func (v *DiagramView) Elements() *scene.Elements {
	return v.elements
}

// Frames returns the number of completed frames
func (v *DiagramView) Frames() uint64 {
	return v.loop.Frames()
}

// DragState returns whether a point is being dragged
func (v *DiagramView) DragState() drag.State {
	return v.drag.State()
}

// SetHandleRadius sets the pick radius of the draggable points in pixels
func (v *DiagramView) SetHandleRadius(radius float64) {
	v.drag.SetHandleRadius(radius)
}

// SetTheme changes colours and sizes from the next frame on
func (v *DiagramView) SetTheme(theme surface.Theme) {
	v.theme = theme
	v.Refresh()
}

// SetOnFrame sets a callback run on the UI thread after every frame
func (v *DiagramView) SetOnFrame(callback func()) {
	v.onFrame = callback
}

// Highlight toggles the highlight classes of a proof step
func (v *DiagramView) Highlight(tok scene.Token, on bool) {
	render.Highlight(v.scene, v.store, tok, on)
	v.Refresh()
}

// Start runs the frame loop at the given rate until Stop is called
func (v *DiagramView) Start(fps int) {
	if v.ticker != nil || fps <= 0 {
		return
	}
	v.ticker = time.NewTicker(time.Second / time.Duration(fps))
	v.done = make(chan struct{})

	go func(ticker *time.Ticker, done chan struct{}) {
		for {
			select {
			case <-ticker.C:
				fyne.Do(v.frame)
			case <-done:
				return
			}
		}
	}(v.ticker, v.done)
}

// Stop ends the frame loop
func (v *DiagramView) Stop() {
	if v.ticker == nil {
		return
	}
	v.ticker.Stop()
	close(v.done)
	v.ticker = nil
}

func (v *DiagramView) frame() {
	// Failures are reported through OnWarning; the frame keeps the last valid positions
	_ = v.loop.Tick()
	v.Refresh()
	if v.onFrame != nil {
		v.onFrame()
	}
}

// MouseDown starts a drag when the press hits a handle
func (v *DiagramView) MouseDown(event *desktop.MouseEvent) {
	if event.Button == desktop.MouseButtonPrimary {
		v.drag.PointerDown(toVector(event.Position))
	}
}

// MouseUp ends the drag
func (v *DiagramView) MouseUp(*desktop.MouseEvent) {
	v.drag.PointerUp()
}

// Dragged moves the dragged point with the pointer
func (v *DiagramView) Dragged(event *fyne.DragEvent) {
	v.drag.PointerMove(toVector(event.Position))
}

// DragEnd ends the drag
func (v *DiagramView) DragEnd() {
	v.drag.PointerUp()
}

func (v *DiagramView) MouseIn(*desktop.MouseEvent) {}

func (v *DiagramView) MouseMoved(*desktop.MouseEvent) {}

// MouseOut releases the dragged point when the pointer leaves the diagram
func (v *DiagramView) MouseOut() {
	v.drag.PointerUp()
}

// CreateRenderer creates the renderer for the widget
func (v *DiagramView) CreateRenderer() fyne.WidgetRenderer {
	r := &diagramRenderer{view: v}
	r.background = canvas.NewRectangle(v.theme.Background)
	r.polygons = canvas.NewRaster(r.rasterize)
	r.Refresh()
	return r
}

// diagramRenderer implements fyne.WidgetRenderer. Polygons are rasterized,
// everything above them is drawn with canvas primitives that are created on
// first sight of an element and only updated afterwards.
type diagramRenderer struct {
	view       *DiagramView
	background *canvas.Rectangle
	polygons   *canvas.Raster
	cache      map[string]*elementObjects
	objects    []fyne.CanvasObject
}

// elementObjects holds the canvas objects drawing one surface element
type elementObjects struct {
	lines  []*canvas.Line // segment pieces or polygon outline
	circle *canvas.Circle
	text   *canvas.Text
}

func (r *diagramRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.polygons.Resize(size)
}

func (r *diagramRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *diagramRenderer) Refresh() {
	if r.cache == nil {
		r.cache = make(map[string]*elementObjects)
	}

	theme := r.view.theme
	r.background.FillColor = theme.Background
	r.objects = append(make([]fyne.CanvasObject, 0, len(r.objects)), r.background, r.polygons)

	// Outlines of highlighted polygons sit on top of the raster
	for _, e := range r.view.store.Layer(surface.LayerPoly) {
		style := theme.Style(e)
		if style.Width <= 0 {
			continue
		}
		var pieces [][2]geometry.Vector2
		for i := range e.Points {
			pieces = append(pieces, [2]geometry.Vector2{e.Points[i], e.Points[(i+1)%len(e.Points)]})
		}
		r.appendLines(r.objectsOf(e.ID), pieces, style)
	}

	for _, layer := range []surface.Layer{surface.LayerLine, surface.LayerPoint, surface.LayerText} {
		for _, e := range r.view.store.Layer(layer) {
			r.update(e, theme.Style(e))
		}
	}

	r.background.Refresh()
	r.polygons.Refresh()
	canvas.Refresh(r.view)
}

func (r *diagramRenderer) objectsOf(id string) *elementObjects {
	obj, ok := r.cache[id]
	if !ok {
		obj = &elementObjects{}
		r.cache[id] = obj
	}
	return obj
}

// update repositions and restyles the objects of one element and appends
// them to the paint list
func (r *diagramRenderer) update(e *surface.Element, style surface.Style) {
	obj := r.objectsOf(e.ID)

	switch e.Kind {
	case surface.KindSegment:
		if len(e.Points) != 2 {
			return
		}
		r.appendLines(obj, dashPieces(e.Points[0], e.Points[1], style, r.view.theme.DashLength), style)

	case surface.KindMarker:
		if len(e.Points) != 1 {
			return
		}
		if obj.circle == nil {
			obj.circle = canvas.NewCircle(style.Fill)
		}
		if obj.circle.FillColor != style.Fill {
			obj.circle.FillColor = style.Fill
			obj.circle.Refresh()
		}
		radius := float32(style.Radius)
		obj.circle.Resize(fyne.NewSize(2*radius, 2*radius))
		obj.circle.Move(fyne.NewPos(float32(e.Points[0].X)-radius, float32(e.Points[0].Y)-radius))
		r.objects = append(r.objects, obj.circle)

	case surface.KindLabel:
		if len(e.Points) != 1 {
			return
		}
		if obj.text == nil {
			obj.text = canvas.NewText(e.Text, style.Fill)
		}
		size := float32(r.view.theme.FontSize)
		if obj.text.Text != e.Text || obj.text.Color != style.Fill || obj.text.TextSize != size {
			obj.text.Text = e.Text
			obj.text.Color = style.Fill
			obj.text.TextSize = size
			obj.text.Refresh()
		}
		textSize := obj.text.MinSize()
		obj.text.Move(fyne.NewPos(float32(e.Points[0].X)-textSize.Width/2, float32(e.Points[0].Y)-textSize.Height/2))
		r.objects = append(r.objects, obj.text)
	}
}

// appendLines reuses the element's lines for the given pieces, creating more
// when a dashed line grows
func (r *diagramRenderer) appendLines(obj *elementObjects, pieces [][2]geometry.Vector2, style surface.Style) {
	for len(obj.lines) < len(pieces) {
		obj.lines = append(obj.lines, canvas.NewLine(style.Stroke))
	}
	for i, piece := range pieces {
		line := obj.lines[i]
		line.StrokeColor = style.Stroke
		line.StrokeWidth = float32(style.Width)
		line.Position1 = fyne.NewPos(float32(piece[0].X), float32(piece[0].Y))
		line.Position2 = fyne.NewPos(float32(piece[1].X), float32(piece[1].Y))
		line.Refresh()
		r.objects = append(r.objects, line)
	}
}

// dashPieces returns the whole segment, or the visible pieces of a dashed one
func dashPieces(a, b geometry.Vector2, style surface.Style, dash float64) [][2]geometry.Vector2 {
	length := a.Distance(b)
	if !style.Dashed || dash <= 0 || length <= dash {
		return [][2]geometry.Vector2{{a, b}}
	}

	dir := b.Sub(a).Mul(1 / length)
	pieces := make([][2]geometry.Vector2, 0, int(length/(2*dash))+1)
	for d := 0.0; d < length; d += 2 * dash {
		end := math.Min(d+dash, length)
		pieces = append(pieces, [2]geometry.Vector2{a.Add(dir.Mul(d)), a.Add(dir.Mul(end))})
	}
	return pieces
}

// rasterize paints the polygon layer at the raster's pixel size
func (r *diagramRenderer) rasterize(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	size := r.view.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return img
	}
	scale := float64(w) / float64(size.Width)

	theme := r.view.theme
	for _, e := range r.view.store.Layer(surface.LayerPoly) {
		style := theme.Style(e)
		points := make([]geometry.Vector2, len(e.Points))
		for i, p := range e.Points {
			points[i] = p.Mul(scale)
		}
		fillPolygon(img, points, style.Fill)
	}
	return img
}

func (r *diagramRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *diagramRenderer) Destroy() {
	r.view.Stop()
}

func toVector(pos fyne.Position) geometry.Vector2 {
	return geometry.NewVector2(float64(pos.X), float64(pos.Y))
}

