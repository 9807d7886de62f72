package glider

import "github.com/npillmayer/glide"

// Orbit turns a camera at eye, looking at target, around the target like a
// trackball: first by pitch around the camera's right vector, then by yaw
// around its up vector. Angles are in radians. Orbit returns the new eye
// position and the rotated up vector; the distance to target is kept.
//
// If up is parallel to the line of sight, the camera is left unchanged.
func Orbit(eye, target, up glide.V3, yaw, pitch float64) (glide.V3, glide.V3) {
	view := eye.Sub(target)
	u, ok := glide.Unit(up)
	if !ok {
		return eye, up
	}
	right, ok := glide.Unit(view.Mul(-1).Cross(u))
	if !ok {
		tracer().Debugf("camera looks along its up vector, no orbit")
		return eye, up
	}
	rot := glide.Rotation(pitch, right).Combine(glide.Rotation(yaw, u))
	return target.Add(rot.Transform(view)), rot.Transform(u)
}
