package track

import (
	"racing-line-reward/internal/common"

	"gonum.org/v1/gonum/floats"
)

// Loop is an ordered, implicitly closed sequence of waypoints: the last
// point connects back to the first. Track definitions list their points
// counter-clockwise.
type Loop []common.Vec2

// NewLoop copies points into a Loop, rejecting loops with fewer than 2 points.
func NewLoop(points []common.Vec2) (Loop, error) {
	if len(points) < 2 {
		return nil, ErrTooFewPoints
	}
	return Loop(points).Clone(), nil
}

// Clone returns a copy that does not share storage with l.
func (l Loop) Clone() Loop {
	if l == nil {
		return nil
	}
	out := make(Loop, len(l))
	copy(out, l)
	return out
}

// Reversed returns the loop traversed in the opposite direction.
func (l Loop) Reversed() Loop {
	out := make(Loop, len(l))
	for i, p := range l {
		out[len(l)-1-i] = p
	}
	return out
}

// Distances returns the distance from pos to every point of the loop.
func (l Loop) Distances(pos common.Vec2) []float64 {
	d := make([]float64, len(l))
	for i, p := range l {
		d[i] = common.Dist(p, pos)
	}
	return d
}

// Closest returns the index of the point nearest to pos. Ties resolve to the
// lowest index. Returns -1 for an empty loop.
func (l Loop) Closest(pos common.Vec2) int {
	if len(l) == 0 {
		return -1
	}
	return floats.MinIdx(l.Distances(pos))
}

// RotateTo returns the loop re-indexed so that it starts at point i.
func (l Loop) RotateTo(i int) Loop {
	n := len(l)
	out := make(Loop, n)
	for k := range out {
		out[k] = l[(i+k)%n]
	}
	return out
}

// FirstOutside walks the loop in order and returns the index of the first
// point at distance r or more from pos. found is false when every point lies
// strictly inside r.
func (l Loop) FirstOutside(pos common.Vec2, r float64) (idx int, found bool) {
	for i, p := range l {
		if common.Dist(p, pos) >= r {
			return i, true
		}
	}
	return 0, false
}

// Length returns the perimeter of the closed loop.
func (l Loop) Length() float64 {
	total := 0.0
	for i, p := range l {
		total += common.Dist(p, l[(i+1)%len(l)])
	}
	return total
}

// SignedArea returns the shoelace area of the loop. It is positive for
// counter-clockwise loops in a y-up frame.
func (l Loop) SignedArea() float64 {
	area := 0.0
	for i, p := range l {
		q := l[(i+1)%len(l)]
		area += p.X*q.Y - q.X*p.Y
	}
	return area / 2
}
