package ground

import (
	"errors"
	"testing"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/glide"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersectXY(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// camera at (0,0,80), looking down -z, as in the demo window
	hit, err := XY.Intersect(glide.P(0, 0, 80), glide.P(0.1, -0.05, -1))
	require.NoError(t, err)
	assert.True(t, glide.Equal(hit, glide.P(8, -4, 0)), "hit is %s", glide.String(hit))
}

func TestIntersectMisses(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := XY.Intersect(glide.P(0, 0, 80), glide.P(1, 0, 0))
	if !errors.Is(err, ErrNoHit) {
		t.Fatalf("expected ErrNoHit for parallel ray, got %v", err)
	}
	_, err = XY.Intersect(glide.P(0, 0, 80), glide.P(0, 0, 1))
	assert.ErrorIs(t, err, ErrNoHit)
	_, err = Plane{}.Intersect(glide.P(0, 0, 80), glide.P(0, 0, -1))
	assert.ErrorIs(t, err, ErrInvalidPlane)
}

func TestTiltedPlane(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := NewPlane(glide.Origin, glide.Origin)
	assert.ErrorIs(t, err, ErrInvalidPlane)
	pl, err := NewPlane(glide.P(0, 0, 2), glide.P(1, 0, 1))
	require.NoError(t, err)
	hit, err := pl.Intersect(glide.P(0, 0, 10), glide.P(0, 0, -1))
	require.NoError(t, err)
	assert.True(t, glide.Equal(hit, glide.P(0, 0, 2)))
	u, v := pl.Axes()
	assert.InDelta(t, 1.0, u.Len(), 1e-12)
	assert.InDelta(t, 1.0, v.Len(), 1e-12)
	assert.InDelta(t, 0.0, u.Dot(v), 1e-12)
	assert.InDelta(t, 0.0, u.Dot(pl.Normal), 1e-12)
	assert.True(t, glide.Equal(u.Cross(v), pl.Normal))
}

func TestLocalXY(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	x, y := XY.Local(glide.P(3, -2, 0))
	assert.InDelta(t, 3.0, x, 1e-12)
	assert.InDelta(t, -2.0, y, 1e-12)
}

func TestStageContains(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	st := NewSquareStage(XY, 10)
	assert.True(t, st.Contains(glide.P(0, 0, 0)))
	assert.True(t, st.Contains(glide.P(-9.5, 9.5, 0)))
	assert.False(t, st.Contains(glide.P(12, 0, 0)))
	assert.False(t, st.Contains(glide.P(0, -30, 0)))
	assert.Equal(t, XY, st.Plane())
	tri := NewStage(XY, polyclip.Point{X: 0, Y: 0}, polyclip.Point{X: 4, Y: 0}, polyclip.Point{X: 0, Y: 4})
	assert.True(t, tri.Contains(glide.P(1, 1, 0)))
	assert.False(t, tri.Contains(glide.P(3, 3, 0)))
	assert.True(t, Stage{plane: XY}.Contains(glide.P(1000, 0, 0)), "empty stage accepts all")
}
