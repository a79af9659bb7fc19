package track

import (
	"image"
	"image/color"
)

var (
	ovalWall   = color.RGBA{20, 20, 20, 255}
	ovalTarmac = color.RGBA{220, 220, 220, 255}
	ovalStart  = color.RGBA{255, 0, 0, 255}
)

// GenerateOval draws an elliptical ring track centered in a width x height
// image: light tarmac on a dark wall, with a red start marker across the top
// of the ring.
func GenerateOval(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	cx, cy := float64(width)/2, float64(height)/2
	rx, ry := float64(width)*0.375, float64(height)/3

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			// Ellipse equation: (x/a)^2 + (y/b)^2 = 1
			d := (dx*dx)/(rx*rx) + (dy*dy)/(ry*ry)
			if d <= 1.0 && d >= 0.6 {
				img.Set(x, y, ovalTarmac)
			} else {
				img.Set(x, y, ovalWall)
			}
		}
	}

	top := int(cy - ry)
	for y := top; y < top+int(ry/4); y++ {
		for x := int(cx) - 10; x < int(cx)+10; x++ {
			if img.RGBAAt(x, y) == ovalTarmac {
				img.Set(x, y, ovalStart)
			}
		}
	}
	return img
}
