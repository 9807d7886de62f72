package bezier

import (
	"fmt"

	"github.com/npillmayer/glide"
)

// JointC1 returns the second control point of segment 2 for C1 continuity,
// given points 2, 3 and 4 of the anchors. It mirrors p2 at p3, i.e. 2·p3 - p2.
// p4 is not needed and present for symmetry with JointG1.
func JointC1(p2, p3, p4 glide.V3) glide.V3 {
	return p3.Mul(2).Sub(p2)
}

// JointG1 returns the second control point of segment 2 for G1 continuity.
// The outgoing tangent keeps the direction of p3 - p2, its length is half the
// distance from p3 to p4.
//
// If p2 and p3 coincide there is no incoming direction, and JointG1 fails
// with ErrDegenerateInput.
func JointG1(p2, p3, p4 glide.V3) (glide.V3, error) {
	dir, ok := glide.Unit(p3.Sub(p2))
	if !ok {
		return glide.Origin, fmt.Errorf("%w: incoming tangent at %s has zero length",
			ErrDegenerateInput, glide.String(p3))
	}
	length := glide.Dist(p3, p4) * 0.5
	return p3.Add(dir.Mul(length)), nil
}

// Joint computes the joint point for a continuity mode.
func Joint(mode Continuity, p2, p3, p4 glide.V3) (glide.V3, error) {
	var q glide.V3
	var err error
	switch mode {
	case C1:
		q = JointC1(p2, p3, p4)
	case G1:
		q, err = JointG1(p2, p3, p4)
	default:
		err = fmt.Errorf("%w: %s", ErrInvalidArgument, mode)
	}
	if err != nil {
		tracer().Errorf("joint: %v", err)
		return glide.Origin, err
	}
	tracer().Debugf("%s joint for %s -> %s -> %s is %s", mode,
		glide.String(p2), glide.String(p3), glide.String(p4), glide.String(q))
	return q, nil
}
