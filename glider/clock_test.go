package glider

import (
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWallClock(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	base := time.Date(2024, 1, 1, 12, 0, 7, 0, time.UTC)
	var clock WallClock
	assert.Equal(t, 0.0, clock.Param(base))
	assert.InDelta(t, 0.25, clock.Param(base.Add(250*time.Millisecond)), 1e-12)
	assert.InDelta(t, 0.999, clock.Param(base.Add(999*time.Millisecond+700*time.Microsecond)), 1e-12)
	assert.Equal(t, 0.0, clock.Param(base.Add(time.Second)), "sawtooth wraps every second")
}

func TestFrameClock(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	clock := NewFrameClock(2 * time.Second)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 0.0, clock.Param(now), "first frame starts the cycle")
	now = now.Add(500 * time.Millisecond)
	assert.InDelta(t, 0.25, clock.Param(now), 1e-12)
	now = now.Add(time.Second)
	assert.InDelta(t, 0.75, clock.Param(now), 1e-12)
	now = now.Add(time.Second)
	assert.InDelta(t, 0.25, clock.Param(now), 1e-12)
	assert.Equal(t, 500*time.Millisecond, clock.Elapsed())
	// time going backwards is ignored, also for the frames following
	assert.InDelta(t, 0.25, clock.Param(now.Add(-time.Hour)), 1e-12)
	assert.InDelta(t, 0.5, clock.Param(now.Add(500*time.Millisecond)), 1e-12)
	assert.Equal(t, time.Second, clock.Elapsed())
}

func TestFrameClockDefaultPeriod(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	clock := &FrameClock{}
	now := time.Now()
	clock.Param(now)
	assert.InDelta(t, 0.5, clock.Param(now.Add(1500*time.Millisecond)), 1e-12)
}

func TestParseClock(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c, err := ParseClock("WallClock", 0)
	require.NoError(t, err)
	assert.IsType(t, WallClock{}, c)
	c, err = ParseClock(" accumulated ", 3*time.Second)
	require.NoError(t, err)
	require.IsType(t, &FrameClock{}, c)
	assert.Equal(t, 3*time.Second, c.(*FrameClock).Period)
	_, err = ParseClock("sundial", 0)
	assert.Error(t, err)
}
