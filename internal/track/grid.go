package track

import (
	"image"
	"image/color"
)

// Surface is the kind of ground a grid cell represents.
type Surface uint8

const (
	SurfaceWall Surface = iota
	SurfaceTarmac
	SurfaceGravel
	SurfaceStart
)

// Drivable reports whether a car may be on this surface.
func (s Surface) Drivable() bool {
	return s != SurfaceWall
}

// Grid is a rasterised track, one cell per image pixel.
type Grid struct {
	Width, Height int
	Scale         float64 // Meters per cell
	cells         []Surface
}

// NewGrid creates a grid of walls of the given size.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Scale:  1.0,
		cells:  make([]Surface, width*height),
	}
}

// GridFromImage classifies every pixel of img into a Surface.
func GridFromImage(img image.Image, scale float64) *Grid {
	b := img.Bounds()
	g := NewGrid(b.Dx(), b.Dy())
	if scale > 0 {
		g.Scale = scale
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			g.Set(x, y, SurfaceFromColor(img.At(b.Min.X+x, b.Min.Y+y)))
		}
	}
	return g
}

// Get returns the surface at (x, y). Out of bounds cells are walls.
func (g *Grid) Get(x, y int) Surface {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return SurfaceWall
	}
	return g.cells[y*g.Width+x]
}

// Set stores the surface at (x, y); out of bounds writes are ignored.
func (g *Grid) Set(x, y int, s Surface) {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return
	}
	g.cells[y*g.Width+x] = s
}

// SurfaceFromColor maps a pixel color to a surface using fixed thresholds.
func SurfaceFromColor(c color.Color) Surface {
	r, g, b, _ := c.RGBA()
	r8, g8, b8 := r>>8, g>>8, b>>8

	switch {
	case r8 > 200 && g8 < 100 && b8 < 100:
		return SurfaceStart
	case g8 > r8+50 && g8 > b8+50:
		return SurfaceGravel
	case r8 < 50 && g8 < 50 && b8 < 50:
		return SurfaceWall
	}

	// Light pixels are tarmac, and so are anti-aliased marker edges that
	// matched nothing above.
	return SurfaceTarmac
}
