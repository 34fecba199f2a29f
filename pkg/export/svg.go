// Package export writes a rendered diagram to SVG or PNG files.
package export

import (
	"fmt"
	"html"
	"image/color"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/philipparndt/goeuclid/pkg/geometry"
	"github.com/philipparndt/goeuclid/pkg/surface"
)

// Options controls the output size and colours
type Options struct {
	Width  int
	Height int
	Theme  surface.Theme
}

// groupIDs names the SVG group of every layer, bottom to top
var groupIDs = []string{"g-poly", "g-line", "g-point", "g-text"}

// WriteSVG writes the store as an SVG document. Shapes keep their ids and
// classes, so the output can be styled and highlighted like the live view.
func WriteSVG(w io.Writer, store *surface.Store, opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", opts.Width, opts.Height)
	}

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		opts.Width, opts.Height, opts.Width, opts.Height))
	builder.WriteString("\n")
	builder.WriteString(styleSheet(opts.Theme))
	builder.WriteString(fmt.Sprintf(`  <rect width="100%%" height="100%%" fill="%s" />`, cssColor(opts.Theme.Background)))
	builder.WriteString("\n")

	for i, id := range groupIDs {
		builder.WriteString(fmt.Sprintf(`  <g id="%s">`, id))
		builder.WriteString("\n")
		for _, e := range store.Layer(surface.Layer(i)) {
			if elem := renderElement(e, opts.Theme); elem != "" {
				builder.WriteString("    ")
				builder.WriteString(elem)
				builder.WriteString("\n")
			}
		}
		builder.WriteString("  </g>\n")
	}

	builder.WriteString(`</svg>`)
	builder.WriteString("\n")

	if _, err := io.WriteString(w, builder.String()); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}
	return nil
}

func renderElement(e *surface.Element, theme surface.Theme) string {
	id := html.EscapeString(e.ID)
	class := html.EscapeString(strings.Join(e.Classes(), " "))

	switch e.Kind {
	case surface.KindPolygon:
		if len(e.Points) < 3 {
			return ""
		}
		return fmt.Sprintf(`<polygon id="%s" class="%s" points="%s" />`, id, class, formatPoints(e.Points))

	case surface.KindSegment:
		if len(e.Points) < 2 {
			return ""
		}
		return fmt.Sprintf(`<line id="%s" class="%s" x1="%s" y1="%s" x2="%s" y2="%s" />`,
			id, class,
			formatFloat(e.Points[0].X), formatFloat(e.Points[0].Y),
			formatFloat(e.Points[1].X), formatFloat(e.Points[1].Y))

	case surface.KindMarker:
		if len(e.Points) < 1 {
			return ""
		}
		return fmt.Sprintf(`<circle id="%s" class="%s" cx="%s" cy="%s" r="%s" />`,
			id, class, formatFloat(e.Points[0].X), formatFloat(e.Points[0].Y), formatFloat(theme.Style(e).Radius))

	case surface.KindLabel:
		if len(e.Points) < 1 {
			return ""
		}
		return fmt.Sprintf(`<text id="%s" class="%s" x="%s" y="%s" text-anchor="middle">%s</text>`,
			id, class, formatFloat(e.Points[0].X), formatFloat(e.Points[0].Y), html.EscapeString(e.Text))
	}
	return ""
}

func styleSheet(t surface.Theme) string {
	rules := []string{
		fmt.Sprintf(`.poly { fill: %s; stroke: none; }`, cssColor(t.Poly)),
		fmt.Sprintf(`.selected-poly { fill: %s; stroke: %s; stroke-width: %s; }`, cssColor(t.SelectedPoly), cssColor(t.Selected), formatFloat(t.LineWidth)),
		fmt.Sprintf(`.line { stroke: %s; stroke-width: %s; }`, cssColor(t.Line), formatFloat(t.LineWidth)),
		fmt.Sprintf(`.line-dashed { stroke-dasharray: %s; }`, formatFloat(t.DashLength)),
		fmt.Sprintf(`.selected-line { stroke: %s; stroke-width: %s; }`, cssColor(t.Selected), formatFloat(t.SelectedWidth)),
		fmt.Sprintf(`.point { fill: %s; }`, cssColor(t.Point)),
		fmt.Sprintf(`.point-draggable { fill: %s; }`, cssColor(t.DraggablePt)),
		fmt.Sprintf(`.selected-point { fill: %s; }`, cssColor(t.Selected)),
		fmt.Sprintf(`.text { fill: %s; font-family: sans-serif; font-size: %spx; }`, cssColor(t.Text), formatFloat(t.FontSize)),
		fmt.Sprintf(`.selected-text { fill: %s; font-weight: bold; }`, cssColor(t.Selected)),
	}

	var builder strings.Builder
	builder.WriteString("  <style>\n")
	for _, rule := range rules {
		builder.WriteString("    ")
		builder.WriteString(rule)
		builder.WriteString("\n")
	}
	builder.WriteString("  </style>\n")
	return builder.String()
}

// WriteFile writes the store to path, choosing the format from the extension
func WriteFile(path string, store *surface.Store, opts Options) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return writeFile(path, func(w io.Writer) error { return WriteSVG(w, store, opts) })
	case ".png":
		return writeFile(path, func(w io.Writer) error { return WritePNG(w, store, opts) })
	default:
		return fmt.Errorf("unsupported export format %q (use .svg or .png)", filepath.Ext(path))
	}
}

func formatFloat(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}

func formatPoints(points []geometry.Vector2) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = formatFloat(p.X) + "," + formatFloat(p.Y)
	}
	return strings.Join(parts, " ")
}

func cssColor(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, strconv.FormatFloat(float64(c.A)/255, 'f', 3, 64))
}
