package glider

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Clock maps the time of a frame to the path parameter t ∈ [0,1).
type Clock interface {
	Param(now time.Time) float64
}

// WallClock is a sawtooth over the sub-second part of the wall clock, with
// millisecond resolution. It completes one cycle per second, independent of
// frame rate and of when the animation started.
type WallClock struct{}

// Param is part of interface Clock.
func (WallClock) Param(now time.Time) float64 {
	ms := now.Nanosecond() / int(time.Millisecond)
	return float64(ms%1000) / 1000.0
}

// FrameClock accumulates the time between frames and cycles once per
// period. The first frame yields t = 0. A FrameClock is stateful and must
// not be shared between controllers.
type FrameClock struct {
	Period  time.Duration // duration of one cycle, 1s if zero
	elapsed time.Duration
	last    time.Time
}

// NewFrameClock creates a frame clock with the given period.
func NewFrameClock(period time.Duration) *FrameClock {
	return &FrameClock{Period: period}
}

// Param is part of interface Clock.
func (fc *FrameClock) Param(now time.Time) float64 {
	period := fc.Period
	if period <= 0 {
		period = time.Second
	}
	if fc.last.IsZero() {
		fc.last = now
	} else if now.After(fc.last) {
		fc.elapsed = (fc.elapsed + now.Sub(fc.last)) % period
		fc.last = now
	}
	return math.Mod(fc.elapsed.Seconds()/period.Seconds(), 1)
}

// Elapsed returns the accumulated time within the current cycle.
func (fc *FrameClock) Elapsed() time.Duration {
	return fc.elapsed
}

// ParseClock creates a clock by name: "wallclock" or "accumulated".
func ParseClock(name string, period time.Duration) (Clock, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "wallclock", "wall":
		return WallClock{}, nil
	case "accumulated", "frame":
		return NewFrameClock(period), nil
	}
	return nil, fmt.Errorf("unknown clock %q", name)
}
