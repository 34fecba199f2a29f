package export

import (
	"fmt"
	"io"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/philipparndt/goeuclid/pkg/surface"
)

// WritePNG rasterizes the store layer by layer and encodes it as PNG
func WritePNG(w io.Writer, store *surface.Store, opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", opts.Width, opts.Height)
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetColor(opts.Theme.Background)
	dc.Clear()

	// Go Regular covers the Greek labels
	ttfFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    opts.Theme.FontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()
	dc.SetFontFace(face)

	store.Each(func(e *surface.Element) {
		drawElement(dc, e, opts.Theme)
	})

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

func drawElement(dc *gg.Context, e *surface.Element, theme surface.Theme) {
	style := theme.Style(e)

	switch e.Kind {
	case surface.KindPolygon:
		if len(e.Points) < 3 {
			return
		}
		dc.NewSubPath()
		dc.MoveTo(e.Points[0].X, e.Points[0].Y)
		for _, p := range e.Points[1:] {
			dc.LineTo(p.X, p.Y)
		}
		dc.ClosePath()
		dc.SetColor(style.Fill)
		if style.Width > 0 {
			dc.FillPreserve()
			dc.SetColor(style.Stroke)
			dc.SetLineWidth(style.Width)
			dc.Stroke()
		} else {
			dc.Fill()
		}

	case surface.KindSegment:
		if len(e.Points) < 2 {
			return
		}
		dc.SetColor(style.Stroke)
		dc.SetLineWidth(style.Width)
		if style.Dashed {
			dc.SetDash(theme.DashLength, theme.DashLength*0.75)
		} else {
			dc.SetDash()
		}
		dc.DrawLine(e.Points[0].X, e.Points[0].Y, e.Points[1].X, e.Points[1].Y)
		dc.Stroke()
		dc.SetDash()

	case surface.KindMarker:
		if len(e.Points) < 1 {
			return
		}
		dc.SetColor(style.Fill)
		dc.DrawCircle(e.Points[0].X, e.Points[0].Y, style.Radius)
		dc.Fill()

	case surface.KindLabel:
		if len(e.Points) < 1 {
			return
		}
		dc.SetColor(style.Fill)
		// Anchor like SVG text-anchor="middle" on the baseline
		dc.DrawStringAnchored(e.Text, e.Points[0].X, e.Points[0].Y, 0.5, 0)
	}
}

func writeFile(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
