package track

import (
	"testing"

	"racing-line-reward/internal/common"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square() Loop {
	return Loop{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

func TestNewLoop(t *testing.T) {
	t.Parallel()

	_, err := NewLoop(nil)
	require.ErrorIs(t, err, ErrTooFewPoints)

	_, err = NewLoop([]common.Vec2{{X: 1, Y: 1}})
	require.ErrorIs(t, err, ErrTooFewPoints)

	src := []common.Vec2{{X: 1, Y: 1}, {X: 2, Y: 2}}
	l, err := NewLoop(src)
	require.NoError(t, err)
	src[0].X = 99
	assert.Equal(t, 1.0, l[0].X, "NewLoop must copy its input")
}

func TestReversed(t *testing.T) {
	t.Parallel()

	l := square()
	want := Loop{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 0}}
	if diff := cmp.Diff(want, l.Reversed()); diff != "" {
		t.Errorf("Reversed() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, square(), l, "Reversed must not modify the receiver")
}

func TestClosestFirstOnTies(t *testing.T) {
	t.Parallel()

	l := square()
	assert.Equal(t, 0, l.Closest(common.Vec2{X: 0.5, Y: 0.5}))
	assert.Equal(t, 2, l.Closest(common.Vec2{X: 2, Y: 2}))
	assert.Equal(t, 1, l.Closest(common.Vec2{X: 1, Y: -0.5}))
	assert.Equal(t, -1, Loop{}.Closest(common.Vec2{}))
}

func TestRotateTo(t *testing.T) {
	t.Parallel()

	got := square().RotateTo(2)
	want := Loop{{X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}, {X: 1, Y: 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RotateTo(2) mismatch (-want +got):\n%s", diff)
	}
}

func TestFirstOutside(t *testing.T) {
	t.Parallel()

	l := Loop{{X: 0, Y: 0}, {X: 0.5, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	origin := common.Vec2{}

	idx, found := l.FirstOutside(origin, 1)
	require.True(t, found)
	assert.Equal(t, 2, idx, "a point exactly at r counts as outside")

	idx, found = l.FirstOutside(origin, 0)
	require.True(t, found)
	assert.Equal(t, 0, idx)

	_, found = l.FirstOutside(origin, 10)
	assert.False(t, found)
}

func TestLengthAndArea(t *testing.T) {
	t.Parallel()

	l := square()
	assert.InDelta(t, 4, l.Length(), 1e-12)
	assert.InDelta(t, 1, l.SignedArea(), 1e-12)
	assert.InDelta(t, -1, l.Reversed().SignedArea(), 1e-12)
}
