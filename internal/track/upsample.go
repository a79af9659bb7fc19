package track

// Upsample inserts factor-1 linearly interpolated points after every waypoint,
// including along the closing segment from the last point back to the first.
// The result has len(l)*factor points in the same traversal order, and factor
// 1 reproduces the input.
func Upsample(l Loop, factor int) (Loop, error) {
	if factor < 1 {
		return nil, ErrInvalidFactor
	}
	n := len(l)
	if n == 0 {
		return nil, ErrTooFewPoints
	}

	out := make(Loop, 0, n*factor)
	for j := 0; j < n; j++ {
		cur, next := l[j], l[(j+1)%n]
		for i := 0; i < factor; i++ {
			t := float64(i) / float64(factor)
			out = append(out, cur.Lerp(next, t))
		}
	}
	return out, nil
}
