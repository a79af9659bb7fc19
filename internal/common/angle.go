package common

import "math"

// ToPolar converts a cartesian offset to a radius and an angle in degrees.
// The angle lies in [-180, 180].
func ToPolar(x, y float64) (float64, float64) {
	r := math.Sqrt(x*x + y*y)
	theta := math.Atan2(y, x) * (180 / math.Pi)
	return r, theta
}

// ToCartesian is the inverse of ToPolar. theta is in degrees.
func ToCartesian(r, theta float64) (float64, float64) {
	rad := theta * (math.Pi / 180)
	return r * math.Cos(rad), r * math.Sin(rad)
}

// Bearing returns the direction from one point to another, in degrees.
func Bearing(from, to Vec2) float64 {
	d := to.Sub(from)
	_, theta := ToPolar(d.X, d.Y)
	return theta
}

// NormalizeAngle maps an angle in degrees to (-180, 180].
func NormalizeAngle(angle float64) float64 {
	n := math.Floor(angle / 360.0)
	a := angle - n*360.0
	if a <= 180.0 {
		return a
	}
	return a - 360.0
}
