package viewer

import (
	"image"
	"image/color"
	"math"

	"github.com/philipparndt/goeuclid/pkg/geometry"
)

// fillPolygon fills a convex polygon as a fan of triangles
func fillPolygon(img *image.RGBA, points []geometry.Vector2, col color.RGBA) {
	for i := 1; i < len(points)-1; i++ {
		fillTriangle(img, points[0].X, points[0].Y, points[i].X, points[i].Y, points[i+1].X, points[i+1].Y, col)
	}
}

// fillTriangle fills a triangle on an image using a scanline algorithm,
// blending the colour over what is already there
func fillTriangle(img *image.RGBA, x1, y1, x2, y2, x3, y3 float64, col color.RGBA) {
	vertices := [][2]float64{
		{x1, y1},
		{x2, y2},
		{x3, y3},
	}

	// Sort vertices by Y coordinate (top to bottom)
	if vertices[0][1] > vertices[1][1] {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}
	if vertices[1][1] > vertices[2][1] {
		vertices[1], vertices[2] = vertices[2], vertices[1]
	}
	if vertices[0][1] > vertices[1][1] {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}

	x1, y1 = vertices[0][0], vertices[0][1]
	x2, y2 = vertices[1][0], vertices[1][1]
	x3, y3 = vertices[2][0], vertices[2][1]

	bounds := img.Bounds()
	intersections := make([]float64, 0, 3)

	// Sample at pixel centers so shared edges are not painted twice
	for y := int(math.Max(0, math.Ceil(y1-0.5))); y <= int(math.Min(float64(bounds.Max.Y-1), y3)); y++ {
		fy := float64(y) + 0.5
		if fy < y1 || fy >= y3 {
			continue
		}

		intersections = intersections[:0]
		if y1 != y2 && fy >= y1 && fy < y2 {
			t := (fy - y1) / (y2 - y1)
			intersections = append(intersections, x1+t*(x2-x1))
		}
		if y2 != y3 && fy >= y2 && fy < y3 {
			t := (fy - y2) / (y3 - y2)
			intersections = append(intersections, x2+t*(x3-x2))
		}
		if y1 != y3 {
			t := (fy - y1) / (y3 - y1)
			intersections = append(intersections, x1+t*(x3-x1))
		}
		if len(intersections) < 2 {
			continue
		}

		xStart := math.Min(intersections[0], intersections[1])
		xEnd := math.Max(intersections[0], intersections[1])

		// Clamp to image bounds
		start := int(math.Max(0, math.Ceil(xStart-0.5)))
		end := int(math.Min(float64(bounds.Max.X), math.Ceil(xEnd-0.5)))
		for x := start; x < end; x++ {
			blendPixel(img, x, y, col)
		}
	}
}

// blendPixel draws a non-premultiplied colour over the pixel at x, y
func blendPixel(img *image.RGBA, x, y int, col color.RGBA) {
	if col.A == 255 {
		img.SetRGBA(x, y, col)
		return
	}
	dst := img.RGBAAt(x, y)
	a := uint32(col.A)
	inv := 255 - a
	img.SetRGBA(x, y, color.RGBA{
		R: uint8((uint32(col.R)*a + uint32(dst.R)*inv) / 255),
		G: uint8((uint32(col.G)*a + uint32(dst.G)*inv) / 255),
		B: uint8((uint32(col.B)*a + uint32(dst.B)*inv) / 255),
		A: uint8(a + uint32(dst.A)*inv/255),
	})
}
