package reward

import (
	"math"
	"testing"

	"racing-line-reward/internal/common"
	"racing-line-reward/internal/track"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureParams() Params {
	return Params{
		X:             0.7,
		Y:             1.05,
		Heading:       160.0,
		TrackWidth:    0.45,
		IsReversed:    false,
		SteeringAngle: 0.0,
		Waypoints: [][2]float64{
			{0.75, -0.7},
			{1.0, 0.0},
			{0.7, 0.52},
			{0.58, 0.7},
			{0.48, 0.8},
			{0.15, 0.95},
			{-0.1, 1.0},
			{-0.7, 0.75},
			{-0.9, 0.25},
			{-0.9, -0.55},
		},
	}
}

func fixture(mode track.Mode) (AgentState, TrackContext) {
	return fixtureParams().Split(mode)
}

func TestSelectTargetFixture(t *testing.T) {
	t.Parallel()

	agent, tc := fixture(track.ModeCenter)
	got, err := SelectTarget(DefaultConfig(), tc, agent.Position)
	require.NoError(t, err)

	assert.Less(t, common.Dist(got, common.Vec2{X: 0.33, Y: 0.86}), 0.1)
	assert.InDelta(t, 0.2655, got.X, 1e-9)
	assert.InDelta(t, 0.8975, got.Y, 1e-9)

	d := common.Dist(got, agent.Position)
	assert.GreaterOrEqual(t, d, tc.TrackWidth*DefaultMaxSight)
}

func TestFindTargetDetails(t *testing.T) {
	t.Parallel()

	agent, tc := fixture(track.ModeCenter)
	target, err := FindTarget(DefaultConfig(), tc, agent.Position)
	require.NoError(t, err)

	assert.Equal(t, 80, target.ClosestIndex)
	assert.Equal(t, 93, target.Index)
	assert.InDelta(t, 0.48, target.Closest.X, 1e-12)
	assert.InDelta(t, 0.8, target.Closest.Y, 1e-12)
	assert.InDelta(t, 0.45, target.Radius, 1e-12)
	assert.False(t, target.Fallback)
}

func TestTargetSteeringAngleFixture(t *testing.T) {
	t.Parallel()

	agent, tc := fixture(track.ModeCenter)
	got, err := TargetSteeringAngle(DefaultConfig(), tc, agent)
	require.NoError(t, err)
	assert.InDelta(t, 39.33995797964678, got, 1e-6)
}

func TestRewardFixturePositive(t *testing.T) {
	t.Parallel()

	got, err := Reward(DefaultConfig(), fixtureParams())
	require.NoError(t, err)
	assert.Greater(t, got, 0.0)
	assert.InDelta(t, 0.34433403367255366, got, 1e-6)
}

func TestScoreSteeringFamily(t *testing.T) {
	t.Parallel()

	steering := []float64{45, 15, 0, -15, -45}
	want := []float64{0.9056659663274464, 0.5943340336725536, 0.34433403367255366, 0.09433403367255366, 0.01}

	cfg := DefaultConfig()
	var scores []float64
	for i, s := range steering {
		p := fixtureParams()
		p.SteeringAngle = s
		got, err := Reward(cfg, p)
		require.NoError(t, err)
		assert.InDelta(t, want[i], got, 1e-6, "steering %v", s)
		scores = append(scores, got)
	}

	for i := 1; i < len(scores); i++ {
		assert.Less(t, scores[i], scores[i-1], "scores must strictly decrease")
	}
	assert.Equal(t, DefaultMinReward, scores[len(scores)-1])
}

func TestScoreBoundsAndPeak(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	agent, tc := fixture(track.ModeCenter)

	ideal, err := TargetSteeringAngle(cfg, tc, agent)
	require.NoError(t, err)

	agent.SteeringAngle = ideal
	peak, err := Score(cfg, tc, agent)
	require.NoError(t, err)
	assert.Equal(t, 1.0, peak)

	prev := peak
	for offset := 0.5; offset <= 200; offset += 0.5 {
		for _, sign := range []float64{1, -1} {
			agent.SteeringAngle = ideal + sign*offset
			s, err := Score(cfg, tc, agent)
			require.NoError(t, err)
			require.GreaterOrEqual(t, s, DefaultMinReward)
			require.LessOrEqual(t, s, 1.0)
			require.LessOrEqual(t, s, prev)
		}
		agent.SteeringAngle = ideal + offset
		prev, _ = Score(cfg, tc, agent)
	}
}

func TestReversedFixture(t *testing.T) {
	t.Parallel()

	p := fixtureParams()
	p.IsReversed = true
	agent, tc := p.Split(track.ModeCenter)

	target, err := FindTarget(DefaultConfig(), tc, agent.Position)
	require.NoError(t, err)
	assert.Equal(t, 100, target.ClosestIndex)
	assert.InDelta(t, 0.646, target.Point.X, 1e-9)
	assert.InDelta(t, 0.601, target.Point.Y, 1e-9)

	ideal, err := TargetSteeringAngle(DefaultConfig(), tc, agent)
	require.NoError(t, err)
	assert.InDelta(t, 103.1421315373504, ideal, 1e-6)
}

func TestFallbackToClosest(t *testing.T) {
	t.Parallel()

	p := fixtureParams()
	p.TrackWidth = 100
	agent, tc := p.Split(track.ModeCenter)

	target, err := FindTarget(DefaultConfig(), tc, agent.Position)
	require.NoError(t, err)
	assert.True(t, target.Fallback)
	assert.Equal(t, target.Closest, target.Point)
	assert.InDelta(t, 0.48, target.Point.X, 1e-12)
	assert.InDelta(t, 0.8, target.Point.Y, 1e-12)

	ideal, err := TargetSteeringAngle(DefaultConfig(), tc, agent)
	require.NoError(t, err)
	assert.InDelta(t, 68.65222278030632, ideal, 1e-6)
}

func TestShortcutMode(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Mode = track.ModeShortcut

	p := fixtureParams()
	p.X, p.Y, p.Heading = 4.0, 0.6, 0.0
	p.Waypoints = nil

	agent, tc := p.Split(cfg.Mode)
	target, err := FindTarget(cfg, tc, agent.Position)
	require.NoError(t, err)

	assert.InDelta(t, 0.225, target.Radius, 1e-12, "racing line uses half the sight")
	assert.Equal(t, 677, target.ClosestIndex)
	assert.Equal(t, 713, target.Index)
	assert.InDelta(t, 4.2231959015, target.Point.X, 1e-9)
	assert.InDelta(t, 0.5513714755, target.Point.Y, 1e-9)

	ideal, err := TargetSteeringAngle(cfg, tc, agent)
	require.NoError(t, err)
	assert.InDelta(t, -12.291164926845909, ideal, 1e-6)
}

func TestShortcutIgnoresCallerWaypoints(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Mode = track.ModeShortcut

	withWaypoints := fixtureParams()
	without := fixtureParams()
	without.Waypoints = nil

	a, err := Reward(cfg, withWaypoints)
	require.NoError(t, err)
	b, err := Reward(cfg, without)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	agent, tc := withWaypoints.Split(cfg.Mode)
	target, err := SelectTarget(cfg, tc, agent.Position)
	require.NoError(t, err)
	assert.InDelta(t, 1.1806537, target.X, 1e-12)
	assert.InDelta(t, 1.69600972, target.Y, 1e-12)
}

func TestTargetDistanceWithinSight(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	_, tc := fixture(track.ModeCenter)
	dense, err := Dense(cfg, tc)
	require.NoError(t, err)

	// Cars placed on the loop itself see a target roughly one sight away.
	step := 0.0
	for i, p := range dense {
		step = math.Max(step, common.Dist(p, dense[(i+1)%len(dense)]))
	}
	for i := 0; i < len(dense); i += 7 {
		car := dense[i]
		target, err := FindTarget(cfg, tc, car)
		require.NoError(t, err)
		require.False(t, target.Fallback)

		d := common.Dist(target.Point, car)
		assert.GreaterOrEqual(t, d, target.Radius)
		assert.LessOrEqual(t, d, target.Radius+step+1e-9)
	}
}

func TestInvalidInputs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		edit  func(p *Params)
		field string
	}{
		{"no waypoints", func(p *Params) { p.Waypoints = nil }, "waypoints"},
		{"single waypoint", func(p *Params) { p.Waypoints = p.Waypoints[:1] }, "waypoints"},
		{"zero width", func(p *Params) { p.TrackWidth = 0 }, "track_width"},
		{"negative width", func(p *Params) { p.TrackWidth = -1 }, "track_width"},
		{"nan width", func(p *Params) { p.TrackWidth = math.NaN() }, "track_width"},
		{"nan x", func(p *Params) { p.X = math.NaN() }, "position"},
		{"inf heading", func(p *Params) { p.Heading = math.Inf(1) }, "heading"},
		{"nan steering", func(p *Params) { p.SteeringAngle = math.NaN() }, "steering_angle"},
		{"nan waypoint", func(p *Params) { p.Waypoints[3][1] = math.NaN() }, "waypoints"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p := fixtureParams()
			tc.edit(&p)

			_, err := Reward(DefaultConfig(), p)
			require.ErrorIs(t, err, ErrInvalidInput)

			var iie *InvalidInputError
			require.ErrorAs(t, err, &iie)
			assert.Equal(t, tc.field, iie.Field)
		})
	}
}

func TestTooFewWaypointsUnwraps(t *testing.T) {
	t.Parallel()

	p := fixtureParams()
	p.Waypoints = nil
	_, err := Reward(DefaultConfig(), p)
	assert.ErrorIs(t, err, track.ErrTooFewPoints)
}
