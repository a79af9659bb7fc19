package track

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"

	"racing-line-reward/internal/common"
)

// Walker and refinement tuning, in cells.
const (
	walkStep      = 20.0
	walkMaxSteps  = 2000
	walkMinSteps  = 50
	beamMax       = 150.0
	beamStep      = 5.0
	wallSearchMax = 80.0
	relaxPasses   = 10
	smoothPasses  = 2
	smoothWindow  = 5
)

// Centerline is a waypoint loop recovered from a track image, in world
// coordinates (meters, y up) and counter-clockwise.
type Centerline struct {
	Loop  Loop
	Width float64 // Mean track width in meters
}

// LoadCenterline decodes a PNG or JPEG track image and extracts its
// centerline. scale is meters per pixel; values <= 0 mean 1.
func LoadCenterline(path string, scale float64) (Centerline, error) {
	file, err := os.Open(path)
	if err != nil {
		return Centerline{}, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return Centerline{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return ExtractCenterline(GridFromImage(img, scale))
}

// ExtractCenterline walks the drivable surface of g from its start marker
// (or the first tarmac cell), pulls each point towards the middle of the
// track and smooths the result.
func ExtractCenterline(g *Grid) (Centerline, error) {
	start, ok := findStart(g)
	if !ok {
		return Centerline{}, ErrNoTrack
	}

	center, scanWidth := centerAcross(g, start)
	points := walk(g, center)
	if len(points) < 2 {
		return Centerline{}, ErrTooFewPoints
	}

	widths := relax(g, points)
	smooth(points)

	width := scanWidth
	if sum, n := sumPositive(widths); n > 0 {
		width = sum / float64(n)
	}

	loop := make(Loop, len(points))
	for i, p := range points {
		loop[i] = common.Vec2{
			X: p.X * g.Scale,
			Y: (float64(g.Height) - p.Y) * g.Scale,
		}
	}
	if loop.SignedArea() < 0 {
		loop = loop.Reversed()
	}

	return Centerline{Loop: loop, Width: width * g.Scale}, nil
}

// findStart returns the middle of the start marker, or the first tarmac cell
// scanning column by column when the image has no marker.
func findStart(g *Grid) (common.Vec2, bool) {
	var sum common.Vec2
	var first common.Vec2
	n := 0
	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			if g.Get(x, y) == SurfaceStart {
				if n == 0 {
					first = common.Vec2{X: float64(x), Y: float64(y)}
				}
				sum = sum.Add(common.Vec2{X: float64(x), Y: float64(y)})
				n++
			}
		}
	}
	if n > 0 {
		mid := sum.Scale(1 / float64(n))
		if g.Get(int(mid.X), int(mid.Y)).Drivable() {
			return mid, true
		}
		return first, true
	}

	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			if g.Get(x, y) == SurfaceTarmac {
				return common.Vec2{X: float64(x), Y: float64(y)}, true
			}
		}
	}
	return common.Vec2{}, false
}

// centerAcross scans the row through p for walls on both sides and returns
// the midpoint and the distance between them.
func centerAcross(g *Grid, p common.Vec2) (common.Vec2, float64) {
	x, y := int(p.X), int(p.Y)
	left := x
	for left > 0 && g.Get(left, y).Drivable() {
		left--
	}
	right := x
	for right < g.Width-1 && g.Get(right, y).Drivable() {
		right++
	}
	return common.Vec2{X: float64(left+right) / 2, Y: float64(y)}, float64(right - left)
}

// walk steps along the track, each time heading for the deepest ray within a
// half circle around the current direction, until it returns near start.
func walk(g *Grid, start common.Vec2) []common.Vec2 {
	var points []common.Vec2

	cur := start
	dir := common.Vec2{X: 1, Y: 0} // Assume east at the start

	for i := 0; i < walkMaxSteps; i++ {
		base := math.Atan2(dir.Y, dir.X)
		bestAngle, maxDepth := base, 0.0

		for a := -math.Pi / 2; a <= math.Pi/2; a += math.Pi / 32 {
			angle := base + a
			ray := common.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}

			depth := 0.0
			for d := beamStep; d < beamMax; d += beamStep {
				c := cur.Add(ray.Scale(d))
				if !g.Get(int(c.X), int(c.Y)).Drivable() {
					break
				}
				depth = d
			}
			if depth > maxDepth {
				maxDepth = depth
				bestAngle = angle
			}
		}

		step := common.Vec2{X: math.Cos(bestAngle), Y: math.Sin(bestAngle)}
		cur = cur.Add(step.Scale(walkStep))
		// Exponential moving average keeps the heading from jittering.
		dir = dir.Scale(0.2).Add(step.Scale(0.8))

		points = append(points, cur)

		if i > walkMinSteps && common.Dist(cur, start) < walkStep*2 {
			break
		}
	}
	return points
}

// relax moves every point half way towards the middle between the walls on
// either side of it, and returns the measured width at each point (0 where a
// wall was not found within range).
func relax(g *Grid, points []common.Vec2) []float64 {
	n := len(points)
	widths := make([]float64, n)

	for iter := 0; iter < relaxPasses; iter++ {
		for i := range points {
			prev := points[(i-1+n)%n]
			next := points[(i+1)%n]
			tangent := next.Sub(prev)
			normal := common.Vec2{X: -tangent.Y, Y: tangent.X}
			l := normal.Len()
			if l == 0 {
				continue
			}
			normal = normal.Scale(1 / l)

			dLeft, okLeft := distanceToWall(g, points[i], normal)
			dRight, okRight := distanceToWall(g, points[i], normal.Scale(-1))
			if !okLeft || !okRight {
				continue
			}

			correction := (dLeft - dRight) / 2.0
			points[i] = points[i].Add(normal.Scale(correction * 0.5))
			widths[i] = dLeft + dRight
		}
	}
	return widths
}

func distanceToWall(g *Grid, from, dir common.Vec2) (float64, bool) {
	for d := 1.0; d < wallSearchMax; d++ {
		c := from.Add(dir.Scale(d))
		if g.Get(int(c.X), int(c.Y)) == SurfaceWall {
			return d, true
		}
	}
	return 0, false
}

// smooth applies a circular moving average to the points in place.
func smooth(points []common.Vec2) {
	n := len(points)
	tmp := make([]common.Vec2, n)
	for pass := 0; pass < smoothPasses; pass++ {
		copy(tmp, points)
		for i := range points {
			var sum common.Vec2
			for j := -smoothWindow / 2; j <= smoothWindow/2; j++ {
				sum = sum.Add(tmp[((i+j)%n+n)%n])
			}
			points[i] = sum.Scale(1 / float64(smoothWindow))
		}
	}
}

func sumPositive(values []float64) (float64, int) {
	sum, n := 0.0, 0
	for _, v := range values {
		if v > 0 {
			sum += v
			n++
		}
	}
	return sum, n
}
