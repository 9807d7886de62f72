// Package bezier deals with motion paths made of two cubic Bézier segments.
/*

A cubic Bézier segment is defined by four control points P0…P3. It starts
at P0, ends at P3 and is pulled towards P1 and P2. Evaluation uses the
Bernstein form

   (1-t)³·P0 + 3(1-t)²t·P1 + 3(1-t)t²·P2 + t³·P3,   t ∈ [0,1].

Usage

A motion path is built from six anchor points, usually clicked by a user.
The first four points form segment 1. Segment 2 starts at point 3, but its
first inner control point Q is not taken from the anchors: it is derived
from points 2, 3 and 4 to make the joint smooth (package qualifiers
omitted for clarity and brevity):

   path, err := NewPath([]V3{p0, p1, p2, p3, p4, p5}, C1)

With C1 continuity, Q mirrors p2 at p3, so tangents on both sides of the
joint are equal in direction and magnitude. With G1 continuity, Q lies in
the same direction, but at half the distance from p3 to p4; tangent
directions agree, speeds may differ.

A path is sampled over the composite parameter t ∈ [0,1]. The first half
of t maps onto segment 1, the second half onto segment 2. Both halves
take the same amount of "time", regardless of arc length:

   pos := path.Position(t)
   dir := path.Tangent(t)

Tangents are finite differences with a fixed step of TangentDelta in the
local segment parameter. They are not normalized.

Caveats

The equal-time parametrization produces a jump in speed at the joint
whenever the incoming and outgoing tangents differ in length (always for
G1, and for C1 whenever segment lengths differ). This is accepted.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package bezier

import "fmt"

// AsString returns a path, including its spline control points, as a
// (debugging) string. The string contains newlines between segments.
//
// Example, the scenario path with C1 continuity:
//
//	(0,0,0) .. controls (1.0000,2.0000,0.0000) and (2.0000,-1.0000,0.0000)
//	  .. (3,0,0) .. controls (4.0000,1.0000,0.0000) and (5.0000,1.0000,0.0000)
//	  .. (7,0,0)
func AsString(path *Path) string {
	if path == nil {
		return "<nil path>"
	}
	s1, s2 := path.Segment1(), path.Segment2()
	return fmt.Sprintf("%s .. controls %s and %s\n  .. %s .. controls %s and %s\n  .. %s",
		ptstring(s1[0], false), ptstring(s1[1], true), ptstring(s1[2], true),
		ptstring(s1[3], false), ptstring(s2[1], true), ptstring(s2[2], true),
		ptstring(s2[3], false))
}

// SegmentString returns a single segment as a (debugging) string.
func SegmentString(seg Segment) string {
	return fmt.Sprintf("%s .. controls %s and %s .. %s",
		ptstring(seg[0], false), ptstring(seg[1], true), ptstring(seg[2], true),
		ptstring(seg[3], false))
}
