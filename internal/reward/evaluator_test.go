package reward

import (
	"context"
	"testing"

	"racing-line-reward/internal/track"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewEvaluatorRejectsBadConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.UpsampleFactor = 0
	_, err := NewEvaluator(cfg, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEvaluatorLogsEvaluation(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	ev, err := NewEvaluator(DefaultConfig(), zap.New(core))
	require.NoError(t, err)

	got, err := ev.Reward(fixtureParams())
	require.NoError(t, err)
	assert.InDelta(t, 0.34433403367255366, got, 1e-6)

	entries := logs.FilterMessage("reward evaluated").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(80), fields["closest_index"])
	assert.Equal(t, false, fields["fallback"])
	assert.InDelta(t, got, fields["reward"], 1e-12)
}

func TestEvaluatorWarnsOnFallback(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.WarnLevel)
	ev, err := NewEvaluator(DefaultConfig(), zap.New(core))
	require.NoError(t, err)

	p := fixtureParams()
	p.TrackWidth = 50
	res, err := ev.Evaluate(p)
	require.NoError(t, err)
	assert.True(t, res.Target.Fallback)

	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())
	assert.Zero(t, logs.FilterMessage("reward evaluated").Len(), "debug entries are filtered at warn level")
}

func TestEvaluatorUsesConfiguredMode(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Mode = track.ModeShortcut
	ev, err := NewEvaluator(cfg, nil)
	require.NoError(t, err)

	p := fixtureParams()
	p.Waypoints = nil
	res, err := ev.Evaluate(p)
	require.NoError(t, err)
	assert.InDelta(t, 1.1806537, res.Target.Point.X, 1e-12)
	assert.InDelta(t, -106.65053016923488, res.Ideal, 1e-6)
	assert.Equal(t, cfg, ev.Config())
}

func TestRewardMap(t *testing.T) {
	t.Parallel()

	ev, err := NewEvaluator(DefaultConfig(), nil)
	require.NoError(t, err)

	p := fixtureParams()
	wp := make([]any, len(p.Waypoints))
	for i, w := range p.Waypoints {
		wp[i] = []any{w[0], w[1]}
	}
	got, err := ev.RewardMap(map[string]any{
		"x": p.X, "y": p.Y, "heading": p.Heading, "track_width": p.TrackWidth,
		"is_reversed": p.IsReversed, "steering_angle": 15.0, "waypoints": wp,
	})
	require.NoError(t, err)
	assert.InDelta(t, 0.5943340336725536, got, 1e-6)

	_, err = ev.RewardMap(map[string]any{"x": 1.0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRewardBatch(t *testing.T) {
	t.Parallel()

	ev, err := NewEvaluator(DefaultConfig(), nil)
	require.NoError(t, err)

	steering := []float64{45, 15, 0, -15, -45, 39.33995797964678}
	records := make([]Params, len(steering))
	for i, s := range steering {
		records[i] = fixtureParams()
		records[i].SteeringAngle = s
	}

	for _, workers := range []int{0, 1, 3} {
		got, err := ev.RewardBatch(context.Background(), records, workers)
		require.NoError(t, err)
		require.Len(t, got, len(records))
		for i, p := range records {
			want, err := ev.Reward(p)
			require.NoError(t, err)
			assert.Equal(t, want, got[i], "record %d with %d workers", i, workers)
		}
	}
}

func TestRewardBatchStopsOnError(t *testing.T) {
	t.Parallel()

	ev, err := NewEvaluator(DefaultConfig(), nil)
	require.NoError(t, err)

	records := []Params{fixtureParams(), fixtureParams(), fixtureParams()}
	records[1].TrackWidth = 0

	_, err = ev.RewardBatch(context.Background(), records, 2)
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "record 1")
}

func TestRewardBatchCanceled(t *testing.T) {
	t.Parallel()

	ev, err := NewEvaluator(DefaultConfig(), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = ev.RewardBatch(ctx, []Params{fixtureParams()}, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
