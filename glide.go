/*
Package glide implements 3D points, affine transformations and numeric
helpers for an interactive Bézier motion path demo.

Sub-packages build on these types: package bezier evaluates cubic
segments and joins two of them with C1 or G1 continuity, package ground
projects mouse rays onto a ground plane, and package glider drives a
marker along the resulting path, frame by frame.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package glide

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'glide'
func tracer() tracing.Trace {
	return tracing.Select("glide")
}

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = 0.01745329251

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Clamp01 forces n into the unit interval. NaN maps to 0.
func Clamp01(n float64) float64 {
	if math.IsNaN(n) {
		return 0
	}
	return math.Max(0, math.Min(1, n))
}

// === Vector Data Type ======================================================

// V3 is a 3D point or direction. It is a plain mathgl vector, so all of
// mgl64's vector arithmetic applies.
type V3 = mgl64.Vec3

// Origin represents the frequently used constant (0,0,0).
var Origin = P(0, 0, 0)

// P is a quick notation for contructing a point from floats.
func P(x, y, z float64) V3 {
	return V3{x, y, z}
}

// String is a pretty Stringer for points.
func String(v V3) string {
	return fmt.Sprintf("(%g,%g,%g)", v[0], v[1], v[2])
}

// ZapV rounds all components of v to Epsilon.
func ZapV(v V3) V3 {
	return P(Zap(v[0]), Zap(v[1]), Zap(v[2]))
}

// IsOrigin is a predicate: is this point (numerically) the origin?
func IsOrigin(v V3) bool {
	return Equal(v, Origin)
}

// Equal compares two points, component-wise up to ε.
func Equal(v, w V3) bool {
	return Is0(v[0]-w[0]) && Is0(v[1]-w[1]) && Is0(v[2]-w[2])
}

// IsFinite is a predicate: are all components of v neither NaN nor ±Inf?
func IsFinite(v V3) bool {
	for _, c := range v {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Dist returns the euclidian distance between v and w.
func Dist(v, w V3) float64 {
	return w.Sub(v).Len()
}

// Unit returns v scaled to length 1. For (numerically) zero vectors it
// returns false, as no direction can be derived.
func Unit(v V3) (V3, bool) {
	l := v.Len()
	if Is0(l) {
		tracer().Debugf("cannot normalize zero-length vector %s", String(v))
		return Origin, false
	}
	return v.Mul(1 / l), true
}

// === Affine Transformations ================================================

// AT is an affine transform, a homogeneous 4x4 matrix used for transforming
// points in 3D.
type AT mgl64.Mat4

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	return AT(mgl64.Ident4())
}

// Translation transform. Translate a point by v.
func Translation(v V3) AT {
	return AT(mgl64.Translate3D(v[0], v[1], v[2]))
}

// Rotation transform. Rotate a point counter-clockwise around an axis through
// the origin. Argument theta is in radians.
func Rotation(theta float64, axis V3) AT {
	a, ok := Unit(axis)
	if !ok {
		tracer().Errorf("rotation around zero axis, using identity")
		return Identity()
	}
	return AT(mgl64.HomogRotate3D(theta, a))
}

// Scaling transform. Scale a point by factors per axis.
func Scaling(sx, sy, sz float64) AT {
	return AT(mgl64.Scale3D(sx, sy, sz))
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	return mgl64.Mat4(m).String()
}

// Combine 2 affine transformation to a new one: first m, then n.
// Returns a new transformation without changing the argument(s).
func (m AT) Combine(n AT) AT {
	return AT(mgl64.Mat4(n).Mul4(mgl64.Mat4(m)))
}

// Transform a 3D-point. The argument is unchanged and a new point is returned.
func (m AT) Transform(v V3) V3 {
	return mgl64.TransformCoordinate(v, mgl64.Mat4(m))
}
