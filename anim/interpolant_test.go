package anim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = time.Second / 60

// runUntilIdle steps at 60fps until the interpolant settles or limit passes.
func runUntilIdle(t *testing.T, i *Interpolant, limit time.Duration) time.Duration {
	t.Helper()
	var elapsed time.Duration
	for i.Animating() {
		require.Less(t, elapsed, limit, "%s did not settle", i.Name())
		i.Step(frame)
		elapsed += frame
	}
	return elapsed
}

func TestInterpolant_SpringSettlesOnTarget(t *testing.T) {
	i := New("width", 260, DriverLayout)
	var calls []bool
	i.AnimateTo(72, Spring{Tension: 100, Friction: 10}, func(finished bool) {
		calls = append(calls, finished)
	})
	require.True(t, i.Animating())
	assert.Equal(t, 72.0, i.Target())

	runUntilIdle(t, i, 5*time.Second)

	assert.Equal(t, 72.0, i.Value())
	assert.Equal(t, []bool{true}, calls)
}

func TestInterpolant_TimingReachesTargetOnSchedule(t *testing.T) {
	i := New("opacity", 0, DriverCompositor)
	finished := false
	i.AnimateTo(1, Timing{Duration: 200 * time.Millisecond}, func(f bool) { finished = f })

	i.Step(100 * time.Millisecond)
	assert.InDelta(t, 0.5, i.Value(), 0.01, "ease-in-out is symmetric around the midpoint")
	assert.False(t, finished)

	i.Step(100 * time.Millisecond)
	assert.Equal(t, 1.0, i.Value())
	assert.True(t, finished)
	assert.False(t, i.Animating())
}

func TestInterpolant_ZeroDurationCompletesOnFirstStep(t *testing.T) {
	i := New("opacity", 1, DriverCompositor)
	done := false
	i.AnimateTo(0, Timing{}, func(f bool) { done = f })
	i.Step(0)
	assert.True(t, done)
	assert.Equal(t, 0.0, i.Value())
}

func TestInterpolant_NewAnimationSupersedesOld(t *testing.T) {
	i := New("offset", -260, DriverCompositor)
	var first, second []bool
	i.AnimateTo(0, Spring{Tension: 80, Friction: 12}, func(f bool) { first = append(first, f) })
	i.Step(frame)
	mid := i.Value()
	assert.Greater(t, mid, -260.0)

	i.AnimateTo(-260, Spring{Tension: 80, Friction: 12}, func(f bool) { second = append(second, f) })
	assert.Equal(t, []bool{false}, first, "superseded animation reports unfinished")
	assert.Equal(t, mid, i.Value(), "new animation starts from the current value")

	runUntilIdle(t, i, 5*time.Second)
	assert.Equal(t, []bool{false}, first)
	assert.Equal(t, []bool{true}, second)
	assert.Equal(t, -260.0, i.Value())
}

func TestInterpolant_SetCancels(t *testing.T) {
	i := New("offset", 0, DriverCompositor)
	var got []bool
	i.AnimateTo(100, Timing{Duration: time.Second}, func(f bool) { got = append(got, f) })
	i.Set(-260)
	assert.False(t, i.Animating())
	assert.Equal(t, -260.0, i.Value())
	assert.Equal(t, []bool{false}, got)

	// Stepping an idle interpolant is a no-op.
	assert.False(t, i.Step(frame))
	assert.Equal(t, -260.0, i.Value())
}

func TestInterpolant_CallbackMayChainAnimation(t *testing.T) {
	i := New("x", 0, DriverCompositor)
	i.AnimateTo(1, Timing{Duration: frame}, func(bool) {
		i.AnimateTo(2, Timing{Duration: frame}, nil)
	})
	assert.True(t, i.Step(frame), "chained animation keeps the interpolant busy")
	i.Step(frame)
	assert.Equal(t, 2.0, i.Value())
	assert.False(t, i.Animating())
}

func TestInterpolant_Driver(t *testing.T) {
	assert.Equal(t, DriverLayout, New("width", 0, DriverLayout).Driver())
	assert.Equal(t, "layout", DriverLayout.String())
	assert.Equal(t, "compositor", DriverCompositor.String())
}

func TestParallel(t *testing.T) {
	t.Run("fires once after all complete", func(t *testing.T) {
		var got []bool
		cbs := Parallel(2, func(f bool) { got = append(got, f) })
		cbs[1](true)
		assert.Empty(t, got)
		cbs[0](true)
		cbs[0](true) // duplicate report ignored
		assert.Equal(t, []bool{true}, got)
	})

	t.Run("unfinished member makes the group unfinished", func(t *testing.T) {
		var got []bool
		cbs := Parallel(2, func(f bool) { got = append(got, f) })
		cbs[0](false)
		cbs[1](true)
		assert.Equal(t, []bool{false}, got)
	})
}
