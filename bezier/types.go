package bezier

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/glide"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bezier'
func tracer() tracing.Trace {
	return tracing.Select("bezier")
}

// TangentDelta is the step in local segment parameter used for finite
// difference tangents.
const TangentDelta = 0.01

// AnchorCount is the number of user supplied points of a motion path.
const AnchorCount = 6

var (
	// ErrInvalidArgument indicates a malformed input, e.g. a wrong point count.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDegenerateInput indicates a zero-length incoming tangent at the joint.
	ErrDegenerateInput = errors.New("degenerate input")
)

// Segment is a cubic Bézier segment, given by its four control points.
type Segment [4]glide.V3

// SegmentOf creates a segment from a slice of exactly four points.
func SegmentOf(points []glide.V3) (Segment, error) {
	var seg Segment
	if len(points) != len(seg) {
		return seg, fmt.Errorf("%w: segment needs 4 control points, got %d",
			ErrInvalidArgument, len(points))
	}
	copy(seg[:], points)
	return seg, nil
}

// Continuity selects how the joint point of segment 2 is derived.
type Continuity int8

const (
	// C1 continuity: equal tangent direction and magnitude at the joint.
	C1 Continuity = iota
	// G1 continuity: equal tangent direction, independent magnitude.
	G1
)

func (c Continuity) String() string {
	switch c {
	case C1:
		return "C1"
	case G1:
		return "G1"
	}
	return fmt.Sprintf("<continuity %d>", int(c))
}

// ParseContinuity reads a continuity mode, case-insensitive.
func ParseContinuity(s string) (Continuity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c1":
		return C1, nil
	case "g1":
		return G1, nil
	}
	return C1, fmt.Errorf("%w: unknown continuity mode %q", ErrInvalidArgument, s)
}

// TangentBoundary decides what a finite difference tangent does if the
// forward step would leave the segment, i.e. u+TangentDelta > 1.
type TangentBoundary int8

const (
	// Backward uses Eval(u) - Eval(u-δ) near the segment end.
	Backward TangentBoundary = iota
	// Clamp clamps u+δ to 1. The tangent vanishes at u = 1.
	Clamp
	// Extrapolate evaluates the cubic polynomial beyond t = 1.
	Extrapolate
)

func (b TangentBoundary) String() string {
	switch b {
	case Backward:
		return "backward"
	case Clamp:
		return "clamp"
	case Extrapolate:
		return "extrapolate"
	}
	return fmt.Sprintf("<boundary %d>", int(b))
}

// ParseTangentBoundary reads a tangent boundary policy, case-insensitive.
func ParseTangentBoundary(s string) (TangentBoundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "backward":
		return Backward, nil
	case "clamp":
		return Clamp, nil
	case "extrapolate":
		return Extrapolate, nil
	}
	return Backward, fmt.Errorf("%w: unknown tangent boundary %q", ErrInvalidArgument, s)
}
