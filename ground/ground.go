// Package ground projects screen picks onto a ground plane and decides
// whether they land on the stage, the area of the plane clicks are
// accepted for.
package ground

import (
	"errors"
	"fmt"
	"math"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/glide"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'ground'
func tracer() tracing.Trace {
	return tracing.Select("ground")
}

var (
	// ErrNoHit indicates a ray missing the plane, either parallel to it or
	// pointing away from it.
	ErrNoHit = errors.New("ray does not hit plane")
	// ErrInvalidPlane indicates a plane with a zero-length normal.
	ErrInvalidPlane = errors.New("plane normal must not be zero")
)

// Plane is given by a point on it and its normal.
type Plane struct {
	Origin glide.V3
	Normal glide.V3
}

// XY is the plane z = 0, facing +z.
var XY = Plane{Origin: glide.Origin, Normal: glide.P(0, 0, 1)}

// NewPlane creates a plane and normalizes its normal.
func NewPlane(origin, normal glide.V3) (Plane, error) {
	n, ok := glide.Unit(normal)
	if !ok {
		return Plane{}, ErrInvalidPlane
	}
	return Plane{Origin: origin, Normal: n}, nil
}

// Intersect returns the point where a ray hits the plane. The ray starts at
// from and points into direction dir.
func (pl Plane) Intersect(from, dir glide.V3) (glide.V3, error) {
	n, ok := glide.Unit(pl.Normal)
	if !ok {
		return glide.Origin, ErrInvalidPlane
	}
	denom := n.Dot(dir)
	if glide.Is0(denom) {
		return glide.Origin, fmt.Errorf("%w: ray %s is parallel", ErrNoHit, glide.String(dir))
	}
	s := n.Dot(pl.Origin.Sub(from)) / denom
	if s < 0 {
		return glide.Origin, fmt.Errorf("%w: plane is behind ray origin", ErrNoHit)
	}
	hit := from.Add(dir.Mul(s))
	tracer().Debugf("ray %s + s·%s hits plane at s=%.4g: %s",
		glide.String(from), glide.String(dir), s, glide.String(hit))
	return hit, nil
}

// Axes returns an orthonormal pair (u,v) spanning the plane, with u × v
// pointing along the normal. For XY, these are the x- and y-axes.
func (pl Plane) Axes() (glide.V3, glide.V3) {
	n, ok := glide.Unit(pl.Normal)
	if !ok {
		return glide.P(1, 0, 0), glide.P(0, 1, 0)
	}
	helper := glide.P(1, 0, 0) // use the axis least aligned with n
	if math.Abs(n[0]) > math.Abs(n[1]) && math.Abs(n[0]) > math.Abs(n[2]) {
		helper = glide.P(0, 1, 0)
	}
	u, _ := glide.Unit(helper.Sub(n.Mul(helper.Dot(n))))
	v := n.Cross(u)
	return u, v
}

// Local returns plane-local 2D coordinates of p, measured from the plane's
// origin along its axes. p is projected onto the plane first.
func (pl Plane) Local(p glide.V3) (float64, float64) {
	u, v := pl.Axes()
	d := p.Sub(pl.Origin)
	return d.Dot(u), d.Dot(v)
}

// Stage is the area of a plane where picks are accepted.
type Stage struct {
	plane Plane
	area  polyclip.Contour
}

// NewStage creates a stage from a contour in plane-local coordinates.
func NewStage(plane Plane, outline ...polyclip.Point) Stage {
	return Stage{plane: plane, area: polyclip.Contour(outline)}
}

// NewSquareStage creates a square stage centered at the plane's origin.
func NewSquareStage(plane Plane, halfExtent float64) Stage {
	h := math.Abs(halfExtent)
	return NewStage(plane,
		polyclip.Point{X: -h, Y: -h}, polyclip.Point{X: h, Y: -h},
		polyclip.Point{X: h, Y: h}, polyclip.Point{X: -h, Y: h},
	)
}

// Plane returns the plane a stage lies on.
func (st Stage) Plane() Plane {
	return st.plane
}

// Contains is a predicate: does p lie on the stage? An empty stage
// accepts every point.
func (st Stage) Contains(p glide.V3) bool {
	if len(st.area) < 3 {
		return true
	}
	x, y := st.plane.Local(p)
	inside := st.area.Contains(polyclip.Point{X: x, Y: y})
	if !inside {
		tracer().Infof("pick %s is off stage", glide.String(p))
	}
	return inside
}
