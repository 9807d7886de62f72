package bezier

import "github.com/npillmayer/glide"

// Eval returns the point at parameter t, using the Bernstein form.
// t is meant to lie in [0,1]; other values evaluate the cubic polynomial
// outside of the segment.
func (seg Segment) Eval(t float64) glide.V3 {
	u := 1 - t
	tt, uu := t*t, u*u
	p := seg[0].Mul(uu * u)           // (1-t)^3 * P0
	p = p.Add(seg[1].Mul(3 * uu * t)) // 3 * (1-t)^2 * t * P1
	p = p.Add(seg[2].Mul(3 * u * tt)) // 3 * (1-t) * t^2 * P2
	p = p.Add(seg[3].Mul(tt * t))     // t^3 * P3
	return p
}

// Evaluate returns the point at parameter t for a segment given as a slice
// of control points. It fails with ErrInvalidArgument if points does not
// hold exactly 4 entries.
func Evaluate(points []glide.V3, t float64) (glide.V3, error) {
	seg, err := SegmentOf(points)
	if err != nil {
		tracer().Errorf("evaluate: %v", err)
		return glide.Origin, err
	}
	return seg.Eval(t), nil
}

// Start is P0.
func (seg Segment) Start() glide.V3 {
	return seg[0]
}

// End is P3.
func (seg Segment) End() glide.V3 {
	return seg[3]
}

// Derivative returns the analytic first derivative dB/dt at t.
func (seg Segment) Derivative(t float64) glide.V3 {
	u := 1 - t
	d01 := seg[1].Sub(seg[0])
	d12 := seg[2].Sub(seg[1])
	d23 := seg[3].Sub(seg[2])
	d := d01.Mul(3 * u * u)
	d = d.Add(d12.Mul(6 * u * t))
	d = d.Add(d23.Mul(3 * t * t))
	return d
}

// Tangents returns the end tangents, P1-P0 and P3-P2.
func (seg Segment) Tangents() (glide.V3, glide.V3) {
	return seg[1].Sub(seg[0]), seg[3].Sub(seg[2])
}

// Transform applies an affine transformation to all control points.
func (seg Segment) Transform(at glide.AT) Segment {
	var s Segment
	for i, p := range seg {
		s[i] = at.Transform(p)
	}
	return s
}

// forward difference at local parameter u, respecting the boundary policy.
func (seg Segment) difference(u float64, boundary TangentBoundary) glide.V3 {
	v := u + TangentDelta
	if v > 1 {
		switch boundary {
		case Backward:
			return seg.Eval(u).Sub(seg.Eval(u - TangentDelta))
		case Clamp:
			v = 1
		}
	}
	return seg.Eval(v).Sub(seg.Eval(u))
}
