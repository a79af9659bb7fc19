package reward

import (
	"racing-line-reward/internal/common"
	"racing-line-reward/internal/track"
)

// Target is the look-ahead point chosen for one car position.
type Target struct {
	Point        common.Vec2
	Index        int // Index of Point in the upsampled loop
	Closest      common.Vec2
	ClosestIndex int
	Radius       float64
	// Fallback is set when the whole loop lies inside Radius and the
	// closest point was used instead.
	Fallback     bool
}

// FindTarget upsamples the ordered waypoints, finds the point nearest the car
// and walks forward from it to the first point at least the look-ahead radius
// away.
func FindTarget(cfg Config, tc TrackContext, car common.Vec2) (Target, error) {
	if err := cfg.Validate(); err != nil {
		return Target{}, err
	}
	if err := tc.Validate(); err != nil {
		return Target{}, err
	}
	if !car.IsFinite() {
		return Target{}, invalid("position", "must be finite, got %v", car)
	}

	dense, err := Dense(cfg, tc)
	if err != nil {
		return Target{}, err
	}

	closest := dense.Closest(car)
	ahead := dense.RotateTo(closest)
	r := tc.TrackWidth * cfg.Sight(tc.Mode)

	t := Target{
		Closest:      dense[closest],
		ClosestIndex: closest,
		Radius:       r,
	}

	i, found := ahead.FirstOutside(car, r)
	if !found {
		// Only possible when r spans the entire track.
		t.Point = dense[closest]
		t.Index = closest
		t.Fallback = true
		return t, nil
	}

	t.Point = ahead[i]
	t.Index = (closest + i) % len(dense)
	return t, nil
}

// SelectTarget returns the steering target for a car at the given position.
func SelectTarget(cfg Config, tc TrackContext, car common.Vec2) (common.Vec2, error) {
	t, err := FindTarget(cfg, tc, car)
	if err != nil {
		return common.Vec2{}, err
	}
	return t.Point, nil
}

// Dense returns the waypoints in driving direction, upsampled by the
// configured factor.
func Dense(cfg Config, tc TrackContext) (track.Loop, error) {
	dense, err := track.Upsample(track.Ordered(tc.Mode, tc.Waypoints, tc.IsReversed), cfg.UpsampleFactor)
	if err != nil {
		return nil, invalidWrap("waypoints", err)
	}
	return dense, nil
}
