package bezier

import (
	"fmt"

	"github.com/npillmayer/glide"
)

// Path is a composite motion path of two cubic segments, joined at
// anchor 3. Paths are immutable; the joint point is computed once on
// construction.
type Path struct {
	seg1     Segment         // anchors 0…3
	seg2     Segment         // anchor 3, joint, anchors 4 and 5
	mode     Continuity      // how the joint has been derived
	boundary TangentBoundary // finite difference policy near segment ends
}

// NewPath creates a motion path from exactly six anchor points, joining the
// two segments with the given continuity.
//
// It fails with ErrInvalidArgument for a wrong number of anchors or
// non-finite coordinates, and with ErrDegenerateInput if G1 continuity
// cannot find an incoming direction.
func NewPath(anchors []glide.V3, mode Continuity) (*Path, error) {
	if len(anchors) != AnchorCount {
		return nil, fmt.Errorf("%w: path needs %d anchors, got %d",
			ErrInvalidArgument, AnchorCount, len(anchors))
	}
	for i, a := range anchors {
		if !glide.IsFinite(a) {
			return nil, fmt.Errorf("%w: anchor %d is %s", ErrInvalidArgument, i, glide.String(a))
		}
	}
	q, err := Joint(mode, anchors[2], anchors[3], anchors[4])
	if err != nil {
		return nil, err
	}
	path := &Path{mode: mode}
	copy(path.seg1[:], anchors[:4])
	path.seg2 = Segment{anchors[3], q, anchors[4], anchors[5]}
	tracer().Infof("%s path = %s", mode, AsString(path))
	return path, nil
}

// MustNewPath is a compatibility helper which panics on construction errors.
func MustNewPath(anchors []glide.V3, mode Continuity) *Path {
	path, err := NewPath(anchors, mode)
	if err != nil {
		panic(err)
	}
	return path
}

// WithTangentBoundary returns a copy of path using boundary policy b for
// tangents.
func (path *Path) WithTangentBoundary(b TangentBoundary) *Path {
	p := *path
	p.boundary = b
	return &p
}

// Segment1 returns the first segment, anchors 0 to 3.
func (path *Path) Segment1() Segment {
	return path.seg1
}

// Segment2 returns the second segment, starting at anchor 3.
func (path *Path) Segment2() Segment {
	return path.seg2
}

// Joint returns the derived joint point Q, the second control point of segment 2.
func (path *Path) Joint() glide.V3 {
	return path.seg2[1]
}

// Mode returns the continuity the joint has been computed for.
func (path *Path) Mode() Continuity {
	return path.mode
}

// TangentBoundary returns the boundary policy for tangents.
func (path *Path) TangentBoundary() TangentBoundary {
	return path.boundary
}

// Position returns the point at composite parameter t. The first half of
// [0,1] is mapped onto segment 1, the second half onto segment 2.
// t is clamped to [0,1], NaN is taken as 0.
func (path *Path) Position(t float64) glide.V3 {
	seg, u := path.locate(t)
	return seg.Eval(u)
}

// Tangent returns a finite difference tangent at composite parameter t,
// taken in the local parameter of the segment t falls into.
// The tangent is not normalized.
func (path *Path) Tangent(t float64) glide.V3 {
	seg, u := path.locate(t)
	return seg.difference(u, path.boundary)
}

// Map composite parameter t onto a segment and its local parameter.
func (path *Path) locate(t float64) (Segment, float64) {
	t = glide.Clamp01(t)
	if t < 0.5 {
		return path.seg1, t * 2
	}
	return path.seg2, (t - 0.5) * 2
}
