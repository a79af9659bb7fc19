package reward

import (
	"math"

	"racing-line-reward/internal/common"
	"racing-line-reward/internal/track"
)

// AgentState is the pose and steering of the car at one step. Angles are in
// degrees in the same frame as the waypoints, in any range.
type AgentState struct {
	Position      common.Vec2
	Heading       float64
	SteeringAngle float64
}

// TrackContext is the track geometry one evaluation runs against.
type TrackContext struct {
	Waypoints  track.Loop // Counter-clockwise; unused in shortcut mode
	TrackWidth float64
	IsReversed bool
	Mode       track.Mode
}

// Validate rejects poses that cannot produce a bearing.
func (a AgentState) Validate() error {
	if !a.Position.IsFinite() {
		return invalid("position", "must be finite, got %v", a.Position)
	}
	if !finite(a.Heading) {
		return invalid("heading", "must be finite, got %v", a.Heading)
	}
	if !finite(a.SteeringAngle) {
		return invalid("steering_angle", "must be finite, got %v", a.SteeringAngle)
	}
	return nil
}

// Validate checks the track width and, outside shortcut mode, the waypoints.
func (tc TrackContext) Validate() error {
	if !positive(tc.TrackWidth) {
		return invalid("track_width", "must be positive, got %v", tc.TrackWidth)
	}
	if tc.Mode == track.ModeShortcut {
		return nil
	}
	if len(tc.Waypoints) < 2 {
		return invalidWrap("waypoints", track.ErrTooFewPoints)
	}
	for i, p := range tc.Waypoints {
		if !p.IsFinite() {
			return invalid("waypoints", "point %d is not finite: %v", i, p)
		}
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
